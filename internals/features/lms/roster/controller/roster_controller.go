package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	rosterService "hader_backend/internals/features/lms/roster/service"
	userDTO "hader_backend/internals/features/users/user/dto"
	helper "hader_backend/internals/helpers"
	helperAuth "hader_backend/internals/helpers/auth"
)

type RosterController struct {
	DB *gorm.DB
}

func NewRosterController(db *gorm.DB) *RosterController {
	return &RosterController{DB: db}
}

// GET /api/teacher-management
// teacher  → assistants + students miliknya
// assistant → students dari semua teacher yang menautkannya (two-hop)
func (ctl *RosterController) Overview(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}

	switch actor.Role {
	case constants.RoleTeacher:
		assistants, err := rosterService.AssistantsOfTeacher(c.Context(), ctl.DB, actor.ID)
		if err != nil {
			log.Println("[ERROR] AssistantsOfTeacher:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		students, err := rosterService.StudentsOfTeacher(c.Context(), ctl.DB, actor.ID)
		if err != nil {
			log.Println("[ERROR] StudentsOfTeacher:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.JsonOK(c, "", fiber.Map{
			"assistants": userDTO.FromModelUsers(assistants),
			"students":   userDTO.FromModelUsers(students),
		})

	case constants.RoleAssistant:
		students, err := rosterService.StudentsVisibleToAssistant(c.Context(), ctl.DB, actor.ID)
		if err != nil {
			log.Println("[ERROR] StudentsVisibleToAssistant:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.JsonOK(c, "", fiber.Map{
			"students": userDTO.FromModelUsers(students),
		})

	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Unauthorized role")
	}
}

// POST /api/teacher-management {action: add|remove, userId, type: student|assistant}
// Hanya teacher; edge selalu milik caller sendiri (teacher_id = actor.id).
func (ctl *RosterController) Manage(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}

	var req struct {
		Action string    `json:"action"`
		UserID uuid.UUID `json:"userId"`
		Type   string    `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.UserID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId wajib diisi")
	}

	switch req.Action {
	case "add":
		err = rosterService.AddEdge(c.Context(), ctl.DB, actor.ID, req.UserID, req.Type)
	case "remove":
		err = rosterService.RemoveEdge(c.Context(), ctl.DB, actor.ID, req.UserID, req.Type)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "action harus 'add' atau 'remove'")
	}
	if err != nil {
		if err == rosterService.ErrUnknownEdgeKind {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Println("[ERROR] Manage roster edge:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, "", fiber.Map{"success": true})
}
