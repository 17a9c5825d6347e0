package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArticleService interface {
	Create(input models.ArticleInput) (*models.StoredArticle, error)
	Update(id uint, input models.ArticleInput) (*models.StoredArticle, error)
	Delete(id uint) (*models.StoredArticle, error)
	GetAll() ([]models.StoredArticle, error)
	GetBySlug(slug string) (*models.StoredArticle, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) Create(input models.ArticleInput) (*models.StoredArticle, error) {
	slug := input.Slug
	if slug == "" {
		slug = helper.Slugify(input.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: title produces an empty slug", models.ErrInvalid)
	}

	taken, err := s.articleRepo.SlugTaken(slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", models.ErrSlugConflict, slug)
	}

	blocks, err := json.Marshal(input.Blocks)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:      input.Title,
		Slug:       slug,
		CoverImage: input.CoverImage,
		Author:     input.Author,
		Blocks:     datatypes.JSON(blocks),
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	stored, err := article.Stored()
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *articleService) Update(id uint, input models.ArticleInput) (*models.StoredArticle, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %d", models.ErrNotFound, id)
		}
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = helper.Slugify(input.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: title produces an empty slug", models.ErrInvalid)
	}

	// Uniqueness check excludes the article's own record.
	taken, err := s.articleRepo.SlugTaken(slug, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", models.ErrSlugConflict, slug)
	}

	blocks, err := json.Marshal(input.Blocks)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Slug = slug
	article.CoverImage = input.CoverImage
	article.Author = input.Author
	article.Blocks = datatypes.JSON(blocks)

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	stored, err := article.Stored()
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *articleService) Delete(id uint) (*models.StoredArticle, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %d", models.ErrNotFound, id)
		}
		return nil, err
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return nil, err
	}

	stored, err := article.Stored()
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *articleService) GetAll() ([]models.StoredArticle, error) {
	articles, err := s.articleRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stored := make([]models.StoredArticle, 0, len(articles))
	for _, article := range articles {
		sa, err := article.Stored()
		if err != nil {
			return nil, err
		}
		stored = append(stored, sa)
	}
	return stored, nil
}

func (s *articleService) GetBySlug(slug string) (*models.StoredArticle, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: slug %q", models.ErrNotFound, slug)
		}
		return nil, err
	}

	stored, err := article.Stored()
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
