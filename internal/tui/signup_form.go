package tui

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-formstate/field"
	"github.com/MKhiriev/go-formstate/internal/config"
	"github.com/MKhiriev/go-formstate/internal/logger"
	"github.com/MKhiriev/go-formstate/rules"
	"github.com/MKhiriev/go-formstate/validation"
)

const (
	fieldUsername = "username"
	fieldEmail    = "email"
	fieldPassword = "password"
	fieldConfirm  = "confirm"
)

// Field positions on the screen.
const (
	usernameIndex = iota
	emailIndex
	passwordIndex
	confirmIndex
)

var hasDigit = regexp.MustCompile(`[0-9]`)

// signupForm is the validation side of the signup screen.
type signupForm struct {
	form   *field.FormState
	fields []*field.FieldState[string]
	labels []string

	// dependents maps a field index to the fields whose rules read its value.
	dependents map[int][]int
}

func newSignupForm(cfg *config.StructuredConfig, log *logger.Logger) (*signupForm, error) {
	opts := func(name string) []field.Option {
		o := []field.Option{field.WithName(name), field.WithLogger(log.Logger)}
		if cfg.Validation.AutoValidate {
			o = append(o, field.WithAutoValidation())
		}
		return o
	}

	usernameRules := []validation.Validator[string]{
		rules.Required("Username is required"),
		rules.MinLen(3, "Username must be at least 3 characters"),
		rules.MaxLen(20, "Username must be at most 20 characters"),
		rules.Tag[string]("alphanum", "Username may contain only letters and digits"),
	}
	if cfg.Remote.CheckURL != "" {
		client := rules.NewRemoteClient(cfg.Remote.CheckURL, cfg.Remote.RequestTimeout)
		usernameRules = append(usernameRules, rules.Remote(client, cfg.Remote.CheckPath, "Username is already taken"))
	}

	username := field.NewFieldState("", opts(fieldUsername)...).Validators(usernameRules...)

	email := field.NewFieldState("", opts(fieldEmail)...).Validators(
		rules.Required("Email is required"),
		rules.Tag[string]("email", "Email is not valid"),
	)

	password := field.NewFieldState("", opts(fieldPassword)...).Validators(
		rules.Required("Password is required"),
		rules.MinLen(8, "Password must be at least 8 characters"),
		rules.Match(hasDigit, "Password must contain a digit"),
	)

	confirm := field.NewFieldState("", opts(fieldConfirm)...).Validators(
		rules.Required("Repeat the password"),
		rules.EqualTo(password.Value, "Passwords do not match"),
	)

	form := field.NewFormState(field.WithName("signup"), field.WithLogger(log.Logger)).
		Validators(validation.Func(passwordNotUsername))

	s := &signupForm{
		form:   form,
		fields: []*field.FieldState[string]{username, email, password, confirm},
		labels: []string{"Username", "Email", "Password", "Repeat"},
		dependents: map[int][]int{
			passwordIndex: {confirmIndex},
		},
	}
	for _, f := range s.fields {
		if err := form.Add(f.Name(), f.AsAny()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func passwordNotUsername(v field.Values) string {
	username, _ := v[fieldUsername].(string)
	password, _ := v[fieldPassword].(string)
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return "Password must not contain the username"
	}
	return ""
}
