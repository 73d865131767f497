package services

import (
	"context"

	"rentora/internal/models"
	"rentora/internal/repositories"
)

type CustomerService struct {
	CustomerRepo *repositories.CustomerRepository
	UserRepo     *repositories.UserRepository
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	return s.CustomerRepo.CreateCustomer(ctx, customer)
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.CustomerRepo.GetAllCustomers(ctx)
}

func (s *CustomerService) GetProfile(ctx context.Context, userID int) (models.Customer, error) {
	customer, err := s.CustomerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return models.Customer{}, err
	}
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.Customer{}, err
	}
	user.Password = ""
	customer.User = &user
	return customer, nil
}

// UpdateProfile writes name and phone onto the user row, address and city
// onto the customer row. Empty fields are left untouched.
func (s *CustomerService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (models.Customer, error) {
	if err := s.UserRepo.UpdateUserNames(ctx, userID, req.FirstName, req.LastName, req.Phone); err != nil {
		return models.Customer{}, err
	}
	if err := s.CustomerRepo.UpdateCustomer(ctx, userID, req.Address, req.City); err != nil {
		return models.Customer{}, err
	}
	return s.GetProfile(ctx, userID)
}
