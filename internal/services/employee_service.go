package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
)

// employeeService handles employee-related business logic.
type employeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new EmployeeServicer.
func NewEmployeeService(db *gorm.DB) EmployeeServicer {
	return &employeeService{db: db}
}

func validateEmployee(name string, position models.Position, office string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "employee name is required")
	}
	if !position.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "position must be AO or FO")
	}
	if strings.TrimSpace(office) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "office location is required")
	}
	return nil
}

// CreateEmployee creates a new employee.
func (s *employeeService) CreateEmployee(input EmployeeInput) (*models.Employee, error) {
	if err := validateEmployee(input.Name, input.Position, input.OfficeLocation); err != nil {
		return nil, err
	}
	if input.EntryDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "entry date is required")
	}

	employee := &models.Employee{
		Name:           strings.TrimSpace(input.Name),
		Position:       input.Position,
		OfficeLocation: strings.TrimSpace(input.OfficeLocation),
		EntryDate:      input.EntryDate,
		Targets:        []models.Target{},
	}
	if err := s.db.Create(employee).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return employee, nil
}

// GetEmployees returns every active employee with their targets, ordered by name.
func (s *employeeService) GetEmployees() ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := s.db.
		Preload("Targets", func(db *gorm.DB) *gorm.DB { return db.Order("year, month") }).
		Preload("Targets.Product").
		Preload("Targets.Achievement").
		Order("name").
		Find(&employees).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return employees, nil
}

// GetEmployeeByID retrieves an employee with their targets.
func (s *employeeService) GetEmployeeByID(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.
		Preload("Targets", func(db *gorm.DB) *gorm.DB { return db.Order("year, month") }).
		Preload("Targets.Product.Category").
		Preload("Targets.Achievement").
		Where("id = ?", id).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &employee, nil
}

// UpdateEmployee applies the non-nil fields of update.
func (s *employeeService) UpdateEmployee(id string, update EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	name, position, office := employee.Name, employee.Position, employee.OfficeLocation
	if update.Name != nil {
		name = strings.TrimSpace(*update.Name)
	}
	if update.Position != nil {
		position = *update.Position
	}
	if update.OfficeLocation != nil {
		office = strings.TrimSpace(*update.OfficeLocation)
	}
	if err := validateEmployee(name, position, office); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":            name,
		"position":        position,
		"office_location": office,
	}
	if update.EntryDate != nil {
		updates["entry_date"] = *update.EntryDate
	}

	if err := s.db.Model(&models.Employee{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetEmployeeByID(id)
}

// DeleteEmployee soft-deletes an employee. Their targets and achievements
// are kept for reporting.
func (s *employeeService) DeleteEmployee(id string) error {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(employee).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
