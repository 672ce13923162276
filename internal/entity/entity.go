// Package entity maps caller-facing entity names to warehouse tables.
package entity

import (
	"fmt"
	"sort"
)

// Logical entity names accepted in the "type" field of a query request.
const (
	Client   = "client"
	Employee = "employee"
)

// Descriptor identifies the physical table behind a logical entity.
type Descriptor struct {
	// LogicalName is the caller-facing name.
	LogicalName string
	// PhysicalTable is the table id inside the configured dataset.
	PhysicalTable string
	// IdentityColumn holds the numeric primary key.
	IdentityColumn string
	// NameColumn is matched when an id filter carries a textual value.
	NameColumn string
}

// descriptors is read-only after package init.
//
// The employee table is physically named "emploee" in the warehouse schema.
var descriptors = map[string]Descriptor{
	Client: {
		LogicalName:    Client,
		PhysicalTable:  "client",
		IdentityColumn: "client_id",
		NameColumn:     "client_name",
	},
	Employee: {
		LogicalName:    Employee,
		PhysicalTable:  "emploee",
		IdentityColumn: "emp_id",
		NameColumn:     "name",
	},
}

// UnknownEntityError is returned when a logical name has no descriptor.
type UnknownEntityError struct {
	Name string
}

func (e *UnknownEntityError) Error() string {
	if e.Name == "" {
		return "missing 'type' parameter"
	}
	return fmt.Sprintf("invalid query type: %q (expected one of %v)", e.Name, Names())
}

// Resolve returns the descriptor for a logical entity name.
func Resolve(name string) (Descriptor, error) {
	d, ok := descriptors[name]
	if !ok {
		return Descriptor{}, &UnknownEntityError{Name: name}
	}
	return d, nil
}

// Names lists the accepted logical names in sorted order.
func Names() []string {
	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
