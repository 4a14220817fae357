package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/ems-console/api"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, server.Client())
}

func TestEmployeesList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/employees", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]api.Employee{
			{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
				Department: &api.Department{ID: 2, Name: "Engineering"}},
		})
	}))

	employees, err := api.NewEmployees(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, "Ada", employees[0].FirstName)
	require.Equal(t, "Engineering", employees[0].Department.Name)
}

func TestEmployeesCreateAndDelete(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/employees":
			var emp api.Employee
			require.NoError(t, json.NewDecoder(r.Body).Decode(&emp))
			emp.ID = 42
			_ = json.NewEncoder(w).Encode(emp)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/employees/42":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))

	employees := api.NewEmployees(client)
	created, err := employees.Create(context.Background(), api.Employee{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	})
	require.NoError(t, err)
	require.EqualValues(t, 42, created.ID)

	require.NoError(t, employees.Delete(context.Background(), 42))
}

func TestEmployeesUpdate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/employees/42", r.URL.Path)
		var emp api.Employee
		require.NoError(t, json.NewDecoder(r.Body).Decode(&emp))
		emp.ID = 42
		_ = json.NewEncoder(w).Encode(emp)
	}))

	updated, err := api.NewEmployees(client).Update(context.Background(), 42, api.Employee{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@lovelace.dev",
	})
	require.NoError(t, err)
	require.EqualValues(t, 42, updated.ID)
	require.Equal(t, "ada@lovelace.dev", updated.Email)
}

func TestDepartmentsUpdate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/departments/2", r.URL.Path)
		var dep api.Department
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dep))
		_ = json.NewEncoder(w).Encode(dep)
	}))

	updated, err := api.NewDepartments(client).Update(context.Background(), 2, api.Department{
		ID: 2, Name: "Platform Engineering",
	})
	require.NoError(t, err)
	require.Equal(t, "Platform Engineering", updated.Name)
}

func TestStatusMapping(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/users":
			http.Error(w, "forbidden", http.StatusForbidden)
		case "/api/employees/99":
			http.Error(w, "no such employee", http.StatusNotFound)
		default:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}
	}))

	_, err := api.NewAdmin(client).Users(context.Background())
	require.ErrorIs(t, err, api.ErrInsufficientRole)

	_, err = api.NewEmployees(client).Get(context.Background(), 99)
	require.ErrorIs(t, err, api.ErrNotFound)

	_, err = api.NewDepartments(client).List(context.Background())
	require.ErrorIs(t, err, api.ErrSessionExpired)
}

func TestAuditQueryEncodesParameters(t *testing.T) {
	var got map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/audit-logs", r.URL.Path)
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		_ = json.NewEncoder(w).Encode(api.AuditPage{
			Content: []api.AuditEntry{
				{ID: 1, ActorUserID: 7, Action: "ASSIGN_ROLE", ResourceType: "USER"},
			},
			TotalPages:    3,
			TotalElements: 41,
		})
	}))

	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	page, err := api.NewAudit(client).Query(context.Background(), api.AuditFilter{
		ActorUserID:  7,
		Action:       "ASSIGN_ROLE",
		ResourceType: "USER",
		StartDate:    start,
	}, 1, 20, "")
	require.NoError(t, err)

	require.Equal(t, "1", got["page"])
	require.Equal(t, "20", got["size"])
	require.Equal(t, api.DefaultAuditSort, got["sort"])
	require.Equal(t, "7", got["actorUserId"])
	require.Equal(t, "ASSIGN_ROLE", got["action"])
	require.Equal(t, "USER", got["resourceType"])
	require.Equal(t, "2026-01-02T15:04:05Z", got["startDate"])
	_, hasEnd := got["endDate"]
	require.False(t, hasEnd)

	require.Equal(t, 3, page.TotalPages)
	require.EqualValues(t, 41, page.TotalElements)
	require.Len(t, page.Content, 1)
	require.Equal(t, "ASSIGN_ROLE", page.Content[0].Action)
}

func TestAdminRoleAssignment(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/users/assign-role", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("Role assigned successfully"))
	}))

	err := api.NewAdmin(client).AssignRole(context.Background(), 12, "HR", 7)
	require.NoError(t, err)
	require.EqualValues(t, 12, got["userId"])
	require.Equal(t, "HR", got["roleName"])
	require.EqualValues(t, 7, got["actorUserId"])
}

func TestAnalyticsEmployeesByDepartment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analytics/employees-by-department", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]api.DepartmentCount{
			{DepartmentName: "Engineering", EmployeeCount: 12},
			{DepartmentName: "HR", EmployeeCount: 3},
		})
	}))

	counts, err := api.NewAnalytics(client).EmployeesByDepartment(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)
	require.EqualValues(t, 12, counts[0].EmployeeCount)
}
