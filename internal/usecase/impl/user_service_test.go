package impl

import (
	"context"
	"testing"

	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/errors"
	mockRepo "bookmarks/internal/mocks/repository"
	"bookmarks/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	expected := &entity.User{ID: 1, Email: "a@x.com", FirstName: "Ada"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, &entity.Principal{ID: 1, Email: "a@x.com"})

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, &entity.Principal{ID: 1})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.ErrorContains(t, err, "user not found")
}

func TestUserService_GetProfile_NoPrincipal(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.GetProfile(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, int64(1)).
			Return(&entity.User{ID: 1, Email: "a@x.com", FirstName: "Ada", LastName: "King"}, nil)
		userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "a@x.com" && u.FirstName == "Ada" && u.LastName == "Lovelace"
		})).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, &entity.Principal{ID: 1}, &usecase.UpdateProfileInput{
		LastName: ptr("Lovelace"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "Ada", user.FirstName)
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Email: "a@x.com"}, nil)
		userRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)
	})

	_, err := fx.service.UpdateProfile(ctx, &entity.Principal{ID: 1}, &usecase.UpdateProfileInput{
		Email: ptr("b@x.com"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, int64(1)).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.UpdateProfile(ctx, &entity.Principal{ID: 1}, &usecase.UpdateProfileInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_UpdateProfile_UpdateError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1}, nil)
		userRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("db down"))
	})

	_, err := fx.service.UpdateProfile(ctx, &entity.Principal{ID: 1}, &usecase.UpdateProfileInput{})

	assert.ErrorContains(t, err, "failed to update user")
}
