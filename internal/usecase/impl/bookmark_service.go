package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/errors"
	"bookmarks/internal/usecase"

	"go.uber.org/fx"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	txManager    repository.TransactionManager
	bookmarkRepo repository.BookmarkRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// BookmarkServiceParams holds dependencies for BookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BookmarkRepo repository.BookmarkRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		txManager:    params.TxManager,
		bookmarkRepo: params.BookmarkRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns only the principal's bookmarks.
func (srv *bookmarkService) List(ctx context.Context, principal *entity.Principal) ([]*entity.Bookmark, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	bookmarks, err := srv.bookmarkRepo.FindByOwner(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

func (srv *bookmarkService) Get(ctx context.Context, principal *entity.Principal, id int64) (*entity.Bookmark, error) {
	return srv.loadOwned(ctx, srv.bookmarkRepo, principal, id)
}

func (srv *bookmarkService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	bookmark := &entity.Bookmark{
		UserID:      principal.ID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}
	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	srv.log(ctx).Debug("Bookmark created", slog.Int64("bookmarkID", bookmark.ID), slog.Int64("userID", principal.ID))

	return bookmark, nil
}

// Update loads, authorizes and writes in one transaction.
func (srv *bookmarkService) Update(ctx context.Context, principal *entity.Principal, id int64, input *usecase.UpdateBookmarkInput) (*entity.Bookmark, error) {
	var updated *entity.Bookmark
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		bookmark, err := srv.loadOwned(ctx, bookmarkRepo, principal, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			bookmark.Title = *input.Title
		}
		if input.Description != nil {
			bookmark.Description = *input.Description
		}
		if input.Link != nil {
			bookmark.Link = *input.Link
		}

		if err := bookmarkRepo.Update(ctx, bookmark); err != nil {
			return errors.Wrap(err, "failed to update bookmark")
		}
		updated = bookmark

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete loads, authorizes and removes in one transaction.
func (srv *bookmarkService) Delete(ctx context.Context, principal *entity.Principal, id int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		if _, err := srv.loadOwned(ctx, bookmarkRepo, principal, id); err != nil {
			return err
		}

		if err := bookmarkRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete bookmark")
		}

		srv.log(ctx).Debug("Bookmark deleted", slog.Int64("bookmarkID", id), slog.Int64("userID", principal.ID))

		return nil
	})
}

func (srv *bookmarkService) QRCode(ctx context.Context, principal *entity.Principal, id int64) ([]byte, error) {
	bookmark, err := srv.loadOwned(ctx, srv.bookmarkRepo, principal, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateLinkQR(bookmark.Link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render bookmark QR code")
	}

	return png, nil
}

// loadOwned fetches a bookmark and checks it belongs to principal. A missing
// bookmark is reported as not found before ownership is considered.
func (srv *bookmarkService) loadOwned(
	ctx context.Context,
	bookmarkRepo repository.BookmarkRepository,
	principal *entity.Principal,
	id int64,
) (*entity.Bookmark, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	bookmark, err := bookmarkRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "bookmark not found")
		}

		return nil, errors.Wrap(err, "failed to find bookmark")
	}

	if service.Authorize(principal, bookmark.OwnerID()) != service.Allowed {
		srv.log(ctx).Warn("Bookmark access denied",
			slog.Int64("bookmarkID", id),
			slog.Int64("userID", principal.ID),
		)

		return nil, errors.Wrap(domainerrors.ErrForbidden, "bookmark belongs to another user")
	}

	return bookmark, nil
}
