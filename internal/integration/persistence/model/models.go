package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&DepartmentModel{},
		&UserModel{},
		&AccountModel{},
		&TransactionModel{},
		&BudgetModel{},
		&GoalModel{},
		&RecurringRuleModel{},
		&AuditLogModel{},
	}
}
