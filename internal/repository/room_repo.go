package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
)

// RoomRepository is the room-table access interface.
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo creates the GORM-backed RoomRepository.
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Order("room_id").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
