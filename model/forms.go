package model

// LoginForm is what the login page checks before letting the browser submit.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// SearchForm is what the search button checks before starting a search.
type SearchForm struct {
	Source      string `validate:"required"`
	Destination string `validate:"required"`
	Date        string `validate:"required"`
}
