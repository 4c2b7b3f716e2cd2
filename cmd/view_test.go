package main

import (
	mockcomposer "aggregator/internal/composer/mock"
	"aggregator/pkg/backend"
	mockbackend "aggregator/pkg/backend/mock"
	"aggregator/pkg/domain"
	"aggregator/pkg/serrors"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newViewMocks(t *testing.T) (*mockcomposer.MockComposer, *mockbackend.MockReviewService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	return mockcomposer.NewMockComposer(ctrl), mockbackend.NewMockReviewService(ctrl)
}

func TestRunView(t *testing.T) {
	t.Parallel()

	c, reviews := newViewMocks(t)
	ctx := context.Background()

	c.EXPECT().JobDetail(gomock.Any(), 7).Return(&domain.JobDetail{Job: domain.Job{ID: 7}}, nil)
	res, err := runView(ctx, c, reviews, "job", []string{"7"}, domain.JobSearch{})
	require.NoError(t, err)
	require.Equal(t, 7, res.(*domain.JobDetail).Job.ID)

	search := domain.JobSearch{Title: "go", Page: 2, PageSize: 5}
	c.EXPECT().SearchJobs(gomock.Any(), search).Return(&domain.JobSearchResult{Page: 2}, nil)
	_, err = runView(ctx, c, reviews, "search", nil, search)
	require.NoError(t, err)

	c.EXPECT().Dashboard(gomock.Any()).Return(&domain.Dashboard{}, nil)
	_, err = runView(ctx, c, reviews, "dashboard", []string{"ignored"}, domain.JobSearch{})
	require.NoError(t, err)

	c.EXPECT().CompanyOverview(gomock.Any(), 3).Return(&domain.CompanyOverview{}, nil)
	_, err = runView(ctx, c, reviews, "company", []string{"3"}, domain.JobSearch{})
	require.NoError(t, err)
}

func TestRunView_Review(t *testing.T) {
	t.Parallel()

	c, reviews := newViewMocks(t)
	ctx := context.Background()

	reviews.EXPECT().Review(gomock.Any(), "r-1").Return(&domain.Review{ID: "r-1", CompanyID: 3}, nil)
	res, err := runView(ctx, c, reviews, "review", []string{"r-1"}, domain.JobSearch{})
	require.NoError(t, err)
	require.Equal(t, "r-1", res.(*domain.Review).ID)

	reviews.EXPECT().Review(gomock.Any(), "missing").Return(nil, nil)
	_, err = runView(ctx, c, reviews, "review", []string{"missing"}, domain.JobSearch{})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	transport := &backend.TransportError{Service: backend.ReviewServiceName, Path: "/api/company-reviews/x", Err: errors.New("refused")}
	reviews.EXPECT().Review(gomock.Any(), "x").Return(nil, transport)
	_, err = runView(ctx, c, reviews, "review", []string{"x"}, domain.JobSearch{})
	var te *backend.TransportError
	require.ErrorAs(t, err, &te)

	_, err = runView(ctx, c, reviews, "review", nil, domain.JobSearch{})
	require.ErrorContains(t, err, "requires an id")
}

func TestRunViewInvalid(t *testing.T) {
	t.Parallel()

	c, reviews := newViewMocks(t)
	ctx := context.Background()

	_, err := runView(ctx, c, reviews, "unknown", []string{"1"}, domain.JobSearch{})
	require.ErrorContains(t, err, "unknown view")

	_, err = runView(ctx, c, reviews, "candidate", nil, domain.JobSearch{})
	require.ErrorContains(t, err, "requires an id")

	_, err = runView(ctx, c, reviews, "company", []string{"abc"}, domain.JobSearch{})
	require.ErrorContains(t, err, "invalid id")

	_, err = runView(ctx, c, reviews, "application", []string{"-3"}, domain.JobSearch{})
	require.ErrorContains(t, err, "invalid id")
}
