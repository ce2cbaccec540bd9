package routes

import (
	"fleetflow/internal/auth"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/api/expenses")
	{
		expenses.GET("/", middleware.RequireCapability(auth.OpListExpenses), controllers.ListExpenseLogs)
		expenses.POST("/", middleware.RequireCapability(auth.OpCreateExpense), controllers.CreateExpenseLog)
		expenses.PUT("/:id", middleware.RequireCapability(auth.OpUpdateExpense), controllers.UpdateExpenseLog)
		expenses.DELETE("/:id", middleware.RequireCapability(auth.OpDeleteExpense), controllers.DeleteExpenseLog)
	}
}
