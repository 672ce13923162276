package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Client(t *testing.T) {
	d, err := Resolve("client")

	require.NoError(t, err)
	assert.Equal(t, Descriptor{
		LogicalName:    "client",
		PhysicalTable:  "client",
		IdentityColumn: "client_id",
		NameColumn:     "client_name",
	}, d)
}

func TestResolve_EmployeeKeepsPhysicalSpelling(t *testing.T) {
	d, err := Resolve("employee")

	require.NoError(t, err)
	assert.Equal(t, "emploee", d.PhysicalTable)
	assert.Equal(t, "emp_id", d.IdentityColumn)
	assert.Equal(t, "name", d.NameColumn)
}

func TestResolve_Unknown(t *testing.T) {
	for _, name := range []string{"", "Client", "emploee", "department"} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(name)

			var unknown *UnknownEntityError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, name, unknown.Name)
		})
	}
}

func TestUnknownEntityError_Message(t *testing.T) {
	assert.Equal(t, "missing 'type' parameter", (&UnknownEntityError{}).Error())
	assert.Equal(t,
		`invalid query type: "dept" (expected one of [client employee])`,
		(&UnknownEntityError{Name: "dept"}).Error())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"client", "employee"}, Names())
}
