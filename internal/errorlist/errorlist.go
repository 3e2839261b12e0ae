// Bounded list of errors.
package errorlist

import (
	"fmt"
	"strings"
)

var maxErrors = 8

type List struct {
	errors  []error
	message string
}

type joinedErrors interface {
	Unwrap() []error
}

func New(message string) *List {
	return &List{message: message}
}

// Error returns the message followed by each error.
func (list List) Error() string {
	var b strings.Builder
	b.WriteString(list.message)
	for _, err := range list.errors {
		fmt.Fprintf(&b, "; %s", err)
	}
	return b.String()
}

func (list List) Message() string {
	return list.message
}

func (list List) Unwrap() []error {
	return list.errors
}

// Append a single error to the list
//
// use Append to continue after an error up to a number of continuable errors.
//
// Return false when list is full.
// Panics if error wraps multiple errors.
func (list *List) Append(err error) bool {
	if _, ok := err.(joinedErrors); ok {
		panic("errorlist: cannot append aggregated error")
	}
	if err != nil {
		list.errors = append(list.errors, err)
	}
	return list.Len() < maxErrors
}

// Err returns the list as an error, or nil if empty.
func (list *List) Err() error {
	if list.Len() == 0 {
		return nil
	}
	return list
}

func (list List) Len() int {
	return len(list.errors)
}
