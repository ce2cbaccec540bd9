// Package auth defines the closed role set and the per-operation capability
// table. Route middleware consults it, but the table itself has no transport
// dependency.
package auth

type Role string

const (
	RoleManager          Role = "Manager"
	RoleDispatcher       Role = "Dispatcher"
	RoleSafetyOfficer    Role = "Safety Officer"
	RoleFinancialAnalyst Role = "Financial Analyst"
)

var allRoles = [...]Role{RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst}

// Valid checks if the Role is one of the allowed values
func (r Role) Valid() bool {
	for _, v := range allRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Operation names one logical operation of the system.
type Operation string

const (
	OpListVehicles  Operation = "vehicles.list"
	OpCreateVehicle Operation = "vehicles.create"
	OpUpdateVehicle Operation = "vehicles.update"
	OpDeleteVehicle Operation = "vehicles.delete"

	OpListDrivers  Operation = "drivers.list"
	OpCreateDriver Operation = "drivers.create"
	OpUpdateDriver Operation = "drivers.update"
	OpDeleteDriver Operation = "drivers.delete"
	OpRateDriver   Operation = "drivers.rate"

	OpListTrips    Operation = "trips.list"
	OpDispatchTrip Operation = "trips.dispatch"
	OpCompleteTrip Operation = "trips.complete"
	OpUpdateTrip   Operation = "trips.update"
	OpDeleteTrip   Operation = "trips.delete"

	OpListMaintenance     Operation = "maintenance.list"
	OpLogMaintenance      Operation = "maintenance.log"
	OpCompleteMaintenance Operation = "maintenance.complete"

	OpListExpenses  Operation = "expenses.list"
	OpCreateExpense Operation = "expenses.create"
	OpUpdateExpense Operation = "expenses.update"
	OpDeleteExpense Operation = "expenses.delete"

	OpViewDashboard  Operation = "analytics.dashboard"
	OpViewFinancials Operation = "analytics.financials"
)

// capabilities maps each operation to the roles allowed to invoke it.
var capabilities = map[Operation][]Role{
	OpListVehicles:  {RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst},
	OpCreateVehicle: {RoleManager},
	OpUpdateVehicle: {RoleManager, RoleDispatcher},
	OpDeleteVehicle: {RoleManager},

	OpListDrivers:  {RoleManager, RoleSafetyOfficer, RoleDispatcher},
	OpCreateDriver: {RoleManager, RoleSafetyOfficer},
	OpUpdateDriver: {RoleManager, RoleSafetyOfficer},
	OpDeleteDriver: {RoleManager, RoleSafetyOfficer},
	OpRateDriver:   {RoleManager, RoleSafetyOfficer},

	OpListTrips:    {RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst},
	OpDispatchTrip: {RoleManager, RoleDispatcher},
	OpCompleteTrip: {RoleManager, RoleDispatcher},
	OpUpdateTrip:   {RoleManager, RoleDispatcher},
	OpDeleteTrip:   {RoleManager},

	OpListMaintenance:     {RoleManager, RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst},
	OpLogMaintenance:      {RoleManager},
	OpCompleteMaintenance: {RoleManager},

	OpListExpenses:  {RoleManager, RoleFinancialAnalyst},
	OpCreateExpense: {RoleManager, RoleDispatcher, RoleFinancialAnalyst},
	OpUpdateExpense: {RoleManager, RoleFinancialAnalyst},
	OpDeleteExpense: {RoleManager, RoleFinancialAnalyst},

	OpViewDashboard:  {RoleManager, RoleDispatcher, RoleFinancialAnalyst},
	OpViewFinancials: {RoleManager, RoleFinancialAnalyst},
}

// Can reports whether the role may invoke the operation. Unknown operations
// and unknown roles are always denied.
func Can(r Role, op Operation) bool {
	for _, allowed := range capabilities[op] {
		if r == allowed {
			return true
		}
	}
	return false
}
