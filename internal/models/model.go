package models

// User represents a marketplace participant
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" validate:"notblank"`
	LocationID *int64 `json:"location_id,omitempty" validate:"omitempty,gt=0"`
}

// Location represents a place users live in, identified by name and postal code
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"notblank"`
	Plz  *int32 `json:"plz,omitempty"`
}

// Advert represents a classified advertisement owned by a user
type Advert struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"notblank"`
	UserID *int64 `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}

// Bid represents a user's offer on an advert
type Bid struct {
	ID       int64  `json:"id"`
	Value    *int32 `json:"value" validate:"required"`
	AdvertID int64  `json:"advert_id" validate:"required,gt=0"`
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
}

// Entity is implemented by every stored record
type Entity interface {
	Identity() int64
	SetIdentity(id int64)
	Validate() error
}

func (u *User) Identity() int64      { return u.ID }
func (u *User) SetIdentity(id int64) { u.ID = id }
func (u *User) Validate() error      { return validateRecord("user", u) }

func (l *Location) Identity() int64      { return l.ID }
func (l *Location) SetIdentity(id int64) { l.ID = id }
func (l *Location) Validate() error      { return validateRecord("location", l) }

func (a *Advert) Identity() int64      { return a.ID }
func (a *Advert) SetIdentity(id int64) { a.ID = id }
func (a *Advert) Validate() error      { return validateRecord("advert", a) }

func (b *Bid) Identity() int64      { return b.ID }
func (b *Bid) SetIdentity(id int64) { b.ID = id }
func (b *Bid) Validate() error      { return validateRecord("bid", b) }

// UserFilter narrows GET /users
type UserFilter struct {
	Name string `form:"name"`
}

// AdvertFilter narrows GET /adverts
type AdvertFilter struct {
	Name string `form:"name"`
}

// BidFilter narrows GET /bids
type BidFilter struct {
	Value *int32 `form:"value"`
}

// LocationFilter narrows GET /locations. Name and Plz combine with AND.
type LocationFilter struct {
	Name string `form:"name"`
	Plz  *int32 `form:"plz"`
}
