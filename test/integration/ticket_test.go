package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestTicketFlow - тикет проходит open -> in_progress -> resolved
func TestTicketFlow(t *testing.T) {
	ts := GetTestServer(t)

	userToken, user := helpers.CreateAndLoginUser(t, ts, "User", helpers.UniqueEmail("user"), "password123", models.UserRoleFreelancer)
	supportToken, support := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)

	ticketBody := map[string]interface{}{
		"subject": "Cannot withdraw funds",
		"body":    "The withdraw button does nothing when I click it",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/tickets", userToken, ticketBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var ticket models.SupportTicket
	assert.NoError(t, ts.DB.Where("user_id = ?", user.ID).First(&ticket).Error)

	// Автор видит свой тикет, чужой пользователь - нет
	res, _ = ts.SendRequest(t, "GET", "/api/v1/tickets/"+ticket.ID, userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, "Stranger", helpers.UniqueEmail("stranger"), "password123", models.UserRoleFreelancer)
	res, _ = ts.SendRequest(t, "GET", "/api/v1/tickets/"+ticket.ID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Support берет в работу - тикет закрепляется за ним
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/admin/tickets/"+ticket.ID+"/status", supportToken, map[string]interface{}{"status": "in_progress"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.NoError(t, ts.DB.First(&ticket, "id = ?", ticket.ID).Error)
	if assert.NotNil(t, ticket.AssignedTo) {
		assert.Equal(t, support.ID, *ticket.AssignedTo)
	}

	// Решение
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/admin/tickets/"+ticket.ID+"/status", supportToken, map[string]interface{}{"status": "resolved"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Произвольный статус - 400
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/admin/tickets/"+ticket.ID+"/status", supportToken, map[string]interface{}{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Аудит смен статуса
	var count int64
	ts.DB.Model(&models.AuditLog{}).Where("action = ? AND entity_id = ?", models.AuditTicketStatusChanged, ticket.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

// TestTicketBulk - bulk-операции над тикетами
func TestTicketBulk(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginUser(t, ts, "User", helpers.UniqueEmail("user"), "password123", models.UserRoleFreelancer)
	supportToken, _ := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)
	managerToken, _ := helpers.CreateAndLoginUser(t, ts, "Manager", helpers.UniqueEmail("manager"), "password123", models.UserRoleManager)

	t1 := helpers.CreateTestTicket(t, ts.DB, user.ID, "First issue")
	t2 := helpers.CreateTestTicket(t, ts.DB, user.ID, "Second issue")

	// Массовая смена статуса - support
	bulkStatus := map[string]interface{}{
		"ticket_ids": []string{t1.ID, t2.ID},
		"status":     "closed",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/admin/tickets/bulk/status", supportToken, bulkStatus)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"affected":2`)

	// Массовое удаление - только manager и выше
	bulkDelete := map[string]interface{}{"ticket_ids": []string{t1.ID, t2.ID}}
	res, _ = ts.SendRequest(t, "POST", "/api/v1/admin/tickets/bulk/delete", supportToken, bulkDelete)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/admin/tickets/bulk/delete", managerToken, bulkDelete)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"affected":2`)

	var remaining int64
	ts.DB.Model(&models.SupportTicket{}).Count(&remaining)
	assert.Equal(t, int64(0), remaining)
}

// TestTicketList_StaffOnly - общий список тикетов закрыт от пользователей
func TestTicketList_StaffOnly(t *testing.T) {
	ts := GetTestServer(t)

	userToken, user := helpers.CreateAndLoginUser(t, ts, "User", helpers.UniqueEmail("user"), "password123", models.UserRoleFreelancer)
	supportToken, _ := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)

	helpers.CreateTestTicket(t, ts.DB, user.ID, "Visible to staff")

	res, _ := ts.SendRequest(t, "GET", "/api/v1/admin/tickets", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/admin/tickets", supportToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Visible to staff")

	// Свои тикеты пользователь видит
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/tickets/my", userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Visible to staff")
}
