package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
)

// ErrNotFound is returned by point lookups when no row matches.
var ErrNotFound = gorm.ErrRecordNotFound

// Inmate is a row of the warden's occupant listing: the student joined with
// the room they occupy.
type Inmate struct {
	UserID        string    `json:"userid"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Contact       string    `json:"contact"`
	RoomID        string    `json:"roomid"`
	RentPerPerson float64   `json:"rentperperson"`
	RentDueDate   time.Time `json:"rentduedate"`
}

// Store defines the interface for all database operations.
type Store interface {
	// Transaction runs fn against a store bound to a single transaction.
	Transaction(ctx context.Context, fn func(Store) error) error

	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	SetUserAssignment(ctx context.Context, userID string, hostelID, roomID *string) error

	CreateWarden(ctx context.Context, w *model.Warden) error
	GetWardenByEmail(ctx context.Context, email string) (*model.Warden, error)
	GetWardenByID(ctx context.Context, id string) (*model.Warden, error)

	CreateHostel(ctx context.Context, h *model.Hostel) error
	SaveHostel(ctx context.Context, h *model.Hostel) error
	GetHostel(ctx context.Context, hostelID string) (*model.Hostel, error)
	GetHostelByWarden(ctx context.Context, wardenID string) (*model.Hostel, error)
	ListHostels(ctx context.Context) ([]model.Hostel, error)

	CreateRoom(ctx context.Context, r *model.Room) error
	SaveRoom(ctx context.Context, r *model.Room) error
	DeleteRoom(ctx context.Context, roomID string) error
	GetRoom(ctx context.Context, roomID string) (*model.Room, error)
	GetRoomInHostel(ctx context.Context, roomID, hostelID string) (*model.Room, error)
	ListRoomsByHostel(ctx context.Context, hostelID string) ([]model.Room, error)

	GetOccupantByUser(ctx context.Context, userID string) (*model.OccupantDetail, error)
	CreateOccupant(ctx context.Context, o *model.OccupantDetail) error
	// DeleteOccupant removes the assignment row scoped by all three keys and
	// reports how many rows were deleted.
	DeleteOccupant(ctx context.Context, userID, hostelID, roomID string) (int64, error)
	ListInmates(ctx context.Context, hostelID string) ([]Inmate, error)

	// DecrementVacancy performs the conditional decrement
	// (vacancies = vacancies - 1 where vacancies > 0) and reports whether a
	// row was actually updated. A false return with a nil error means the
	// room was either full or absent.
	DecrementVacancy(ctx context.Context, roomID, hostelID string) (bool, error)
	IncrementVacancy(ctx context.Context, roomID, hostelID string) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// --- users ---

func (s *gormStore) CreateUser(ctx context.Context, u *model.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormStore) SetUserAssignment(ctx context.Context, userID string, hostelID, roomID *string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"hostelid": hostelID, "roomid": roomID}).Error
}

// --- wardens ---

func (s *gormStore) CreateWarden(ctx context.Context, w *model.Warden) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *gormStore) GetWardenByEmail(ctx context.Context, email string) (*model.Warden, error) {
	var w model.Warden
	if err := s.db.WithContext(ctx).First(&w, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *gormStore) GetWardenByID(ctx context.Context, id string) (*model.Warden, error) {
	var w model.Warden
	if err := s.db.WithContext(ctx).First(&w, "wardenid = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// --- hostels ---

func (s *gormStore) CreateHostel(ctx context.Context, h *model.Hostel) error {
	return s.db.WithContext(ctx).Create(h).Error
}

func (s *gormStore) SaveHostel(ctx context.Context, h *model.Hostel) error {
	return s.db.WithContext(ctx).Save(h).Error
}

func (s *gormStore) GetHostel(ctx context.Context, hostelID string) (*model.Hostel, error) {
	var h model.Hostel
	if err := s.db.WithContext(ctx).First(&h, "hostelid = ?", hostelID).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *gormStore) GetHostelByWarden(ctx context.Context, wardenID string) (*model.Hostel, error) {
	var h model.Hostel
	if err := s.db.WithContext(ctx).First(&h, "wardenid = ?", wardenID).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *gormStore) ListHostels(ctx context.Context) ([]model.Hostel, error) {
	var hostels []model.Hostel
	if err := s.db.WithContext(ctx).Order("name").Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

// --- rooms ---

func (s *gormStore) CreateRoom(ctx context.Context, r *model.Room) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormStore) SaveRoom(ctx context.Context, r *model.Room) error {
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *gormStore) DeleteRoom(ctx context.Context, roomID string) error {
	return s.db.WithContext(ctx).Delete(&model.Room{}, "roomid = ?", roomID).Error
}

func (s *gormStore) GetRoom(ctx context.Context, roomID string) (*model.Room, error) {
	var r model.Room
	if err := s.db.WithContext(ctx).First(&r, "roomid = ?", roomID).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) GetRoomInHostel(ctx context.Context, roomID, hostelID string) (*model.Room, error) {
	var r model.Room
	err := s.db.WithContext(ctx).
		First(&r, "roomid = ? AND hostelid = ?", roomID, hostelID).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) ListRoomsByHostel(ctx context.Context, hostelID string) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Where("hostelid = ?", hostelID).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// --- occupants ---

func (s *gormStore) GetOccupantByUser(ctx context.Context, userID string) (*model.OccupantDetail, error) {
	var o model.OccupantDetail
	if err := s.db.WithContext(ctx).First(&o, "userid = ?", userID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *gormStore) CreateOccupant(ctx context.Context, o *model.OccupantDetail) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *gormStore) DeleteOccupant(ctx context.Context, userID, hostelID, roomID string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("userid = ? AND hostelid = ? AND roomid = ?", userID, hostelID, roomID).
		Delete(&model.OccupantDetail{})
	return res.RowsAffected, res.Error
}

func (s *gormStore) ListInmates(ctx context.Context, hostelID string) ([]Inmate, error) {
	var inmates []Inmate
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.id as user_id, users.name, users.email, users.contact, " +
			"hostelroomdetails.roomid as room_id, hostelroomdetails.rentperperson as rent_per_person, " +
			"hostelroomdetails.rentduedate as rent_due_date").
		Joins("JOIN hostelroomdetails ON hostelroomdetails.roomid = users.roomid").
		Where("users.hostelid = ?", hostelID).
		Order("users.name").
		Scan(&inmates).Error
	if err != nil {
		return nil, err
	}
	return inmates, nil
}

// --- vacancy accounting ---

func (s *gormStore) DecrementVacancy(ctx context.Context, roomID, hostelID string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&model.Room{}).
		Where("roomid = ? AND hostelid = ? AND vacancies > 0", roomID, hostelID).
		Update("vacancies", gorm.Expr("vacancies - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) IncrementVacancy(ctx context.Context, roomID, hostelID string) error {
	res := s.db.WithContext(ctx).Model(&model.Room{}).
		Where("roomid = ? AND hostelid = ?", roomID, hostelID).
		Update("vacancies", gorm.Expr("vacancies + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("room not found while restoring vacancy")
	}
	return nil
}
