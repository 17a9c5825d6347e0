package handlers

import (
	"strconv"

	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type UserHandler struct {
	userService services.UserService
	helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, httpHelper *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, helper: httpHelper}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.helper.Validate.Struct(input); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.helper.SendValidationError(c, validationErrors)
			return
		}
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendCreated(c, "User created", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid user ID")
		return
	}

	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.helper.Validate.Struct(input); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.helper.SendValidationError(c, validationErrors)
			return
		}
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(uint(id), input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "User updated", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.Delete(uint(id))
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "User deleted", user)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "Users fetched", users)
}
