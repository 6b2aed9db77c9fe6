package datastore

import "fmt"

type NotFoundError struct {
	Kind string
	Name string
}

func (nf NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %s", nf.Kind, nf.Name)
}
