package handlers

import (
	"strconv"

	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, helper: httpHelper}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var input models.ArticleInput
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

	article, err := h.articleService.Create(input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var input models.ArticleInput
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

	article, err := h.articleService.Update(uint(id), input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.articleService.Delete(uint(id))
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "Article deleted", article)
}

func (h *ArticleHandler) GetAllArticles(c *gin.Context) {
	articles, err := h.articleService.GetAll()
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "Articles fetched", articles)
}

func (h *ArticleHandler) GetArticleData(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.articleService.GetBySlug(slug)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "Article fetched", article)
}
