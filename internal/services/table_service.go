package services

import (
	"errors"
	"fmt"
	"log"
	"table_order/internal/models"
	"table_order/internal/repository"

	"gorm.io/gorm"
)

// QRGenerator renders table QR codes.
type QRGenerator interface {
	PNG(tableID uint) ([]byte, error)
	WriteFile(tableID, number uint) (string, error)
	MenuURL(tableID uint) string
}

type TableService interface {
	CreateTable(number uint) (*models.Table, error)
	GetTable(id uint) (*models.Table, error)
	GetTables() ([]models.Table, error)
	QRCode(id uint) ([]byte, error)
	MenuURL(id uint) string
}

type tableService struct {
	tableRepo repository.TableRepository
	qr        QRGenerator
}

func NewTableService(tableRepo repository.TableRepository, qr QRGenerator) TableService {
	return &tableService{tableRepo: tableRepo, qr: qr}
}

func (s *tableService) CreateTable(number uint) (*models.Table, error) {
	if number == 0 {
		return nil, fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}
	_, err := s.tableRepo.GetByNumber(number)
	if err == nil {
		return nil, fmt.Errorf("%w: %d", ErrTableExists, number)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check table number: %w", err)
	}

	table := &models.Table{Number: number}
	if err := s.tableRepo.Create(table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// The id is only known after insert, and the QR code encodes it.
	path, err := s.qr.WriteFile(table.ID, table.Number)
	if err != nil {
		log.Printf("Warning: failed to write QR code for table %d: %v", table.Number, err)
		return table, nil
	}
	if err := s.tableRepo.UpdateQRCode(table.ID, path); err != nil {
		return nil, fmt.Errorf("failed to store QR code path: %w", err)
	}
	table.QRCode = path
	return table, nil
}

func (s *tableService) GetTable(id uint) (*models.Table, error) {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, ErrTableNotFound, "failed to load table")
	}
	return table, nil
}

func (s *tableService) GetTables() ([]models.Table, error) {
	return s.tableRepo.GetAll()
}

func (s *tableService) QRCode(id uint) ([]byte, error) {
	table, err := s.GetTable(id)
	if err != nil {
		return nil, err
	}
	return s.qr.PNG(table.ID)
}

func (s *tableService) MenuURL(id uint) string {
	return s.qr.MenuURL(id)
}
