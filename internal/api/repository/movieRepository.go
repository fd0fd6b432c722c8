package repository

import (
	"context"
	"fmt"
	"strings"

	"kinohub/internal/api/models"

	"gorm.io/gorm"
)

// MovieSearch holds the filters for the movie search endpoint.
type MovieSearch struct {
	Query    string
	Genre    string
	YearFrom int
	YearTo   int
	Ordering string
	Page     int
	PageSize int
}

// searchCap bounds how many rows a single search may scan into a page set.
const searchCap = 100

type MovieRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, params MovieSearch) ([]models.Movie, int64, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// Delete soft-deletes a movie. The row stays behind the default scope.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search performs a case-insensitive match on title and description plus
// genre/year filters. Ordering by average rating joins the ratings table and
// treats unrated movies as 0.
func (r *movieRepository) Search(ctx context.Context, params MovieSearch) ([]models.Movie, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.Movie{})

	if q := strings.TrimSpace(params.Query); q != "" {
		p := "%" + q + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", p, p)
	}
	if g := strings.TrimSpace(params.Genre); g != "" {
		db = db.Where("genre ILIKE ?", g)
	}
	if params.YearFrom > 0 {
		db = db.Where("year >= ?", params.YearFrom)
	}
	if params.YearTo > 0 {
		db = db.Where("year <= ?", params.YearTo)
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}
	if total > searchCap {
		total = searchCap
	}

	switch params.Ordering {
	case "average_rating", "-average_rating":
		dir := "ASC"
		if strings.HasPrefix(params.Ordering, "-") {
			dir = "DESC"
		}
		db = db.Select("movies.*").
			Joins("LEFT JOIN ratings ON ratings.movie_id = movies.id").
			Group("movies.id").
			Order("COALESCE(AVG(ratings.score), 0) " + dir)
	case "year", "-year", "created_at", "-created_at", "title", "-title":
		col := strings.TrimPrefix(params.Ordering, "-")
		dir := "asc"
		if strings.HasPrefix(params.Ordering, "-") {
			dir = "desc"
		}
		db = db.Order(col + " " + dir)
	default:
		db = db.Order("created_at desc")
	}

	offset := (params.Page - 1) * params.PageSize
	if offset >= searchCap {
		return []models.Movie{}, total, nil
	}
	limit := params.PageSize
	if offset+limit > searchCap {
		limit = searchCap - offset
	}

	var list []models.Movie
	if err := db.Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search movies: %w", err)
	}
	return list, total, nil
}
