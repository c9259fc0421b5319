package webui

import (
	"strings"

	"github.com/muhammadheryan/railway-reservation/model"
	validatorx "github.com/muhammadheryan/railway-reservation/utils/validator"
)

const (
	MsgFillAllFields   = "Please fill all fields"
	MsgInvalidPhone    = "Invalid phone number!"
	MsgPasswordsDiffer = "Passwords do not match!"

	BorderMismatch = "2px solid red"
	BorderMatch    = "2px solid green"
)

type LoginView struct {
	Form     Element
	Email    Element
	Password Element
}

// LoginForm stops submission when email or password is blank.
type LoginForm struct {
	view  LoginView
	alert *Alerter
}

func NewLoginForm(view LoginView, alert *Alerter) *LoginForm {
	return &LoginForm{view: view, alert: alert}
}

func (f *LoginForm) Bind() {
	f.view.Form.AddEventListener("submit", f.OnSubmit)
}

func (f *LoginForm) OnSubmit(e Event) {
	form := model.LoginForm{
		Email:    strings.TrimSpace(f.view.Email.Value()),
		Password: strings.TrimSpace(f.view.Password.Value()),
	}
	if err := validatorx.ValidateStruct(&form); err != nil {
		f.alert.Show(MsgFillAllFields, AlertError)
		e.PreventDefault()
	}
}

type RegisterView struct {
	Form            Element
	Password        Element
	ConfirmPassword Element
	Phone           Element
}

// RegisterForm checks the phone first and only then the password pair.
type RegisterForm struct {
	view  RegisterView
	alert *Alerter
}

func NewRegisterForm(view RegisterView, alert *Alerter) *RegisterForm {
	return &RegisterForm{view: view, alert: alert}
}

func (f *RegisterForm) Bind() {
	f.view.Form.AddEventListener("submit", f.OnSubmit)
	f.view.ConfirmPassword.AddEventListener("input", f.OnConfirmInput)
}

func (f *RegisterForm) OnSubmit(e Event) {
	pass := strings.TrimSpace(f.view.Password.Value())
	confirm := strings.TrimSpace(f.view.ConfirmPassword.Value())
	phone := strings.TrimSpace(f.view.Phone.Value())

	if !validatorx.IsPhone(phone) {
		f.alert.Show(MsgInvalidPhone, AlertError)
		e.PreventDefault()
		return
	}

	if pass != confirm {
		f.alert.Show(MsgPasswordsDiffer, AlertError)
		e.PreventDefault()
	}
}

// OnConfirmInput colours the confirm field by comparing the raw values.
func (f *RegisterForm) OnConfirmInput(Event) {
	if f.view.Password.Value() != f.view.ConfirmPassword.Value() {
		f.view.ConfirmPassword.SetStyle("border", BorderMismatch)
		return
	}
	f.view.ConfirmPassword.SetStyle("border", BorderMatch)
}
