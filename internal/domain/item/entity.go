package item

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"ezrent/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle       = errors.New("title must be between 1 and 120 characters")
	ErrInvalidDescription = errors.New("description must be at most 2000 characters")
	ErrInvalidPrice       = errors.New("price per day must be between 1 and 100000000 cents")
	ErrInvalidCategory    = errors.New("category must be between 1 and 50 characters")
	ErrInvalidLocation    = errors.New("location must be at most 200 characters")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrTooManyImages      = errors.New("an item can have at most 5 images")
	ErrItemUnavailable    = errors.New("item unavailable")
)

const (
	maxTitleLength       = 120
	maxDescriptionLength = 2000
	maxCategoryLength    = 50
	maxLocationLength    = 200
	MaxImages            = 5

	MaxPricePerDay int64 = 100_000_000
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	pricePerDay money.Money
	category    string
	location    string
	quantity    int
	imageURLs   []string
	createdAt   time.Time
	updatedAt   time.Time
}

type Input struct {
	Title       string
	Description string
	PricePerDay int64
	Category    string
	Location    string
	Quantity    int
	ImageURLs   []string
}

func NewItem(ownerID uuid.UUID, in Input, now time.Time) (*Item, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return nil, ErrInvalidTitle
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		return nil, ErrInvalidDescription
	}
	if in.PricePerDay <= 0 || in.PricePerDay > MaxPricePerDay {
		return nil, ErrInvalidPrice
	}
	price, err := money.New(in.PricePerDay)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" || utf8.RuneCountInString(category) > maxCategoryLength {
		return nil, ErrInvalidCategory
	}
	location := strings.TrimSpace(in.Location)
	if utf8.RuneCountInString(location) > maxLocationLength {
		return nil, ErrInvalidLocation
	}
	if in.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if len(in.ImageURLs) > MaxImages {
		return nil, ErrTooManyImages
	}

	images := make([]string, 0, len(in.ImageURLs))
	for _, u := range in.ImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			images = append(images, u)
		}
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: strings.TrimSpace(in.Description),
		pricePerDay: price,
		category:    category,
		location:    location,
		quantity:    in.Quantity,
		imageURLs:   images,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	title, description string,
	pricePerDay money.Money,
	category, location string,
	quantity int,
	imageURLs []string,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		pricePerDay: pricePerDay,
		category:    category,
		location:    location,
		quantity:    quantity,
		imageURLs:   imageURLs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Reserve takes one unit out of stock. Persistence enforces the same rule with a
// conditional decrement, so this is the in-memory mirror of that statement.
func (i *Item) Reserve() error {
	if i.quantity < 1 {
		return ErrItemUnavailable
	}
	i.quantity--
	return nil
}

func (i *Item) Release() {
	i.quantity++
}

func (i *Item) IsAvailable() bool { return i.quantity > 0 }

// CoverImage is the first image, used in notification snapshots.
func (i *Item) CoverImage() string {
	if len(i.imageURLs) == 0 {
		return ""
	}
	return i.imageURLs[0]
}

func (i *Item) ID() uuid.UUID            { return i.id }
func (i *Item) OwnerID() uuid.UUID       { return i.ownerID }
func (i *Item) Title() string            { return i.title }
func (i *Item) Description() string      { return i.description }
func (i *Item) PricePerDay() money.Money { return i.pricePerDay }
func (i *Item) Category() string         { return i.category }
func (i *Item) Location() string         { return i.location }
func (i *Item) Quantity() int            { return i.quantity }
func (i *Item) ImageURLs() []string      { return i.imageURLs }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }
