package state

// Outcome is the last operation's result as shown to the user. Every
// operation attempt on a manager overwrites it; it never persists.
type Outcome struct {
	Message string
	IsError bool
}

func success(message string) Outcome {
	return Outcome{Message: message}
}

func failure(message string) Outcome {
	return Outcome{Message: message, IsError: true}
}
