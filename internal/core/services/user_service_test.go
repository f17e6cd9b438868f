package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	"github.com/invoxa/invoxa/internal/core/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Jane", Email: "Jane@Example.com", Password: "s3cret-pass"}

	suite.mockRepo.On("FindUserByEmail", ctx, "jane@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "jane@example.com" && u.Name == "Jane" &&
			u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("jane@example.com", user.Email)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"}

	suite.mockRepo.On("FindUserByEmail", ctx, "jane@example.com").
		Return(&domain.User{UserID: uuid.NewString(), Email: "jane@example.com"}, nil).Once()

	_, err := suite.service.RegisterUser(ctx, req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "s3cret-pass"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "jane@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jane@example.com", password)
	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "jane@example.com").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "jane@example.com", "wrong-password")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")
	suite.Require().Error(err)
	// Missing accounts and bad passwords are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
