package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/thoas/go-funk"
	"gorm.io/gorm"

	"rockrev/entity"
)

// Titles is the title write and read path
type Titles struct {
	db         *gorm.DB
	dispatcher *Dispatcher
}

// NewTitles makes the title service
func NewTitles(conn *gorm.DB, dispatcher *Dispatcher) *Titles {
	return &Titles{db: conn, dispatcher: dispatcher}
}

// TitleInput is a title create/update payload with raw association names
type TitleInput struct {
	Name      string   `json:"name"`
	Year      int      `json:"year"`
	Text      string   `json:"text"`
	Bands     []string `json:"band"`
	SubGenres []string `json:"subgenre"`
}

// TitleRead is a title with its computed score attached. AvgScore stays nil
// when the title has no reviews, which serializes as JSON null rather than 0.
type TitleRead struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Year      int               `json:"year"`
	Text      string            `json:"text"`
	Bands     []entity.Band     `json:"band"`
	SubGenres []entity.SubGenre `json:"subgenre"`
	AvgScore  *float64          `json:"avg_score"`
	Reviews   []ReviewRead      `json:"reviews,omitempty"`
}

func validateTitleInput(input TitleInput) error {
	if input.Name == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if input.Year <= 0 {
		return &ValidationError{Reason: "year must be a positive integer"}
	}
	if input.Year > time.Now().Year() {
		return &ValidationError{Reason: fmt.Sprintf("year %d is in the future", input.Year)}
	}
	return nil
}

// Create makes a title, resolving band and subgenre names through the
// normalizer, then notifies followers of every associated band
func (s *Titles) Create(input TitleInput) (*entity.Title, error) {
	if err := validateTitleInput(input); err != nil {
		return nil, err
	}
	var title entity.Title
	err := s.db.Transaction(func(tx *gorm.DB) error {
		bands, err := ResolveBands(tx, input.Bands)
		if err != nil {
			return err
		}
		subgenres, err := ResolveSubGenres(tx, input.SubGenres)
		if err != nil {
			return err
		}
		title = entity.Title{
			Name:      input.Name,
			Year:      input.Year,
			Text:      input.Text,
			Bands:     bands,
			SubGenres: subgenres,
		}
		return tx.Create(&title).Error
	})
	if err != nil {
		return nil, err
	}
	for _, band := range title.Bands {
		s.dispatcher.BandAddedToTitle(title, band)
	}
	return &title, nil
}

// Update replaces the title fields and its full association sets. Only bands
// absent before the update trigger a notification round.
func (s *Titles) Update(titleID uint, input TitleInput) (*entity.Title, error) {
	if err := validateTitleInput(input); err != nil {
		return nil, err
	}
	title, err := entity.GetTitleByID(s.db, titleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "title"}
	}
	if err != nil {
		return nil, err
	}
	previous := funk.Map(title.Bands, func(band entity.Band) uint {
		return band.ID
	}).([]uint)

	var added []entity.Band
	err = s.db.Transaction(func(tx *gorm.DB) error {
		bands, err := ResolveBands(tx, input.Bands)
		if err != nil {
			return err
		}
		subgenres, err := ResolveSubGenres(tx, input.SubGenres)
		if err != nil {
			return err
		}
		title.Name = input.Name
		title.Year = input.Year
		title.Text = input.Text
		fields := map[string]interface{}{"name": input.Name, "year": input.Year, "text": input.Text}
		if err := tx.Model(title).Updates(fields).Error; err != nil {
			return err
		}
		if err := tx.Model(title).Association("Bands").Replace(bands); err != nil {
			return err
		}
		if err := tx.Model(title).Association("SubGenres").Replace(subgenres); err != nil {
			return err
		}
		title.Bands = bands
		title.SubGenres = subgenres
		for _, band := range bands {
			if !funk.Contains(previous, band.ID) {
				added = append(added, band)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, band := range added {
		s.dispatcher.BandAddedToTitle(*title, band)
	}
	return title, nil
}

// Delete removes a title and, through the store constraints, its reviews and
// association rows. Bands and subgenres stay.
func (s *Titles) Delete(titleID uint) error {
	result := s.db.Delete(&entity.Title{}, titleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "title"}
	}
	return nil
}

// Get returns one title with avg_score and its reviews attached
func (s *Titles) Get(titleID uint) (*TitleRead, error) {
	title, err := entity.GetTitleByID(s.db, titleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "title"}
	}
	if err != nil {
		return nil, err
	}
	read, err := s.attachScore(*title)
	if err != nil {
		return nil, err
	}
	reviews, err := entity.ListReviewsByTitle(s.db, titleID)
	if err != nil {
		return nil, err
	}
	read.Reviews = ReadReviews(reviews)
	return read, nil
}

// List returns titles newest first with avg_score attached, without nested
// reviews
func (s *Titles) List(filter entity.TitleFilter) ([]TitleRead, error) {
	titles, err := entity.ListTitles(s.db, filter)
	if err != nil {
		return nil, err
	}
	reads := make([]TitleRead, 0, len(titles))
	for _, title := range titles {
		read, err := s.attachScore(title)
		if err != nil {
			return nil, err
		}
		reads = append(reads, *read)
	}
	return reads, nil
}

func (s *Titles) attachScore(title entity.Title) (*TitleRead, error) {
	avg, err := entity.AvgScore(s.db, title.ID)
	if err != nil {
		return nil, err
	}
	return &TitleRead{
		ID:        title.ID,
		Name:      title.Name,
		Year:      title.Year,
		Text:      title.Text,
		Bands:     title.Bands,
		SubGenres: title.SubGenres,
		AvgScore:  avg,
	}, nil
}
