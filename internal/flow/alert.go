package flow

import "errors"

// Alert is a modal message: the only feedback channel the screens have.
type Alert struct {
	Title string
	Body  string
}

var (
	LoginSucceeded  = Alert{Title: "Success", Body: "Logged in successfully."}
	SignupSucceeded = Alert{Title: "Success", Body: "Account created. Please log in."}
)

// AlertFor turns a failed Attempt into the alert to show.
func AlertFor(err error) Alert {
	if errors.Is(err, ErrSubmitInProgress) {
		return Alert{Title: "Please Wait", Body: "Your request is still being processed."}
	}

	switch KindOf(err) {
	case KindValidation:
		return Alert{Title: "Invalid Input", Body: MessageOf(err)}
	case KindAuth:
		return Alert{Title: "Login Failed", Body: MessageOf(err)}
	case KindStorage:
		return Alert{Title: "Error", Body: "Something went wrong. Please try again."}
	case KindRemote:
		return Alert{Title: "Request Failed", Body: MessageOf(err)}
	default:
		return Alert{Title: "Error", Body: "Something went wrong. Please try again."}
	}
}
