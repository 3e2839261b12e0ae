package cmd

import "os"

// errorCode carries an exit code up to Main.
//
// os.Exit() bypasses deferred functions. The message is already printed
// when run returns an errorCode.
type errorCode struct {
	code    int
	message string
}

func (err errorCode) Error() string {
	return err.message
}

func (err errorCode) Exit() {
	os.Exit(err.code)
}
