package validation

import "regexp"

// Field names used by the console forms. They match the JSON field names of
// the request payloads.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

var (
	namePattern     = regexp.MustCompile(`^[A-Za-z\s-]{2,50}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^(?:\d{10}|\(\d{3}\)\s?\d{3}-\d{4}|\d{3}-\d{3}-\d{4})$`)
	passwordPattern = regexp.MustCompile(`^.{8,}$`)
)

const (
	MsgNamePattern      = "Name must be 2–50 characters and contain only letters, spaces, or hyphens"
	MsgPasswordMismatch = "Passwords do not match!"
)

func firstNameRules() []Rule {
	return []Rule{
		Required("First Name is required"),
		Pattern(namePattern, MsgNamePattern),
	}
}

func lastNameRules() []Rule {
	return []Rule{
		Required("Last Name is required"),
		Pattern(namePattern, MsgNamePattern),
	}
}

func emailRules() []Rule {
	return []Rule{
		Required("Email is required"),
		Pattern(emailPattern, "Enter a valid email address (e.g., user@example.com)"),
	}
}

func phoneRules() []Rule {
	return []Rule{
		Required("Please enter the Phone Number"),
		Pattern(phonePattern, "Enter a valid phone number (e.g., 123-456-7890 or (123) 456-7890)"),
	}
}

func passwordRules() []Rule {
	return []Rule{
		Required("Please enter the Password"),
		Pattern(passwordPattern, "Password must be at least 8 characters"),
	}
}

func confirmPasswordRules() []Rule {
	return []Rule{
		Required("Please confirm your password!"),
		MatchesField(FieldPassword, MsgPasswordMismatch),
	}
}

// LoginRules validates the login form. The login form keeps its own wording.
func LoginRules() *RuleSet {
	return NewRuleSet().
		Field(FieldEmail,
			Required("Please input your email!"),
			Pattern(emailPattern, "Enter a valid email")).
		Field(FieldPassword,
			Required("Please input your password!"),
			MinLength(8, "Password must be at least 8 characters"))
}

// SignupRules validates the self-registration form.
func SignupRules() *RuleSet {
	return NewRuleSet().
		Field(FieldFirstName, firstNameRules()...).
		Field(FieldLastName, lastNameRules()...).
		Field(FieldEmail, emailRules()...).
		Field(FieldPhone, phoneRules()...).
		Field(FieldPassword, passwordRules()...).
		Field(FieldConfirmPassword, confirmPasswordRules()...)
}

// CreateUserRules validates the admin creation form.
func CreateUserRules() *RuleSet {
	return NewRuleSet().
		Field(FieldFirstName, firstNameRules()...).
		Field(FieldLastName, lastNameRules()...).
		Field(FieldEmail, emailRules()...).
		Field(FieldPhone, phoneRules()...).
		Field(FieldPassword, passwordRules()...)
}

// EditUserRules validates the edit dialog. Passwords are not editable there.
func EditUserRules() *RuleSet {
	return NewRuleSet().
		Field(FieldFirstName, firstNameRules()...).
		Field(FieldLastName, lastNameRules()...).
		Field(FieldEmail, emailRules()...).
		Field(FieldPhone, phoneRules()...)
}
