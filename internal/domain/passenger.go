package domain

type Passenger struct {
	ID        int64   `json:"passenger_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

type PassengerUpdate struct {
	FirstName Field[string] `json:"first_name"`
	LastName  Field[string] `json:"last_name"`
	Email     Field[string] `json:"email"`
	Phone     Field[string] `json:"phone"`
}

func (u PassengerUpdate) IsEmpty() bool {
	return !u.FirstName.Set && !u.LastName.Set && !u.Email.Set && !u.Phone.Set
}
