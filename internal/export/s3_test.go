package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bytebites/backend/internal/models"
	"github.com/bytebites/backend/internal/types"
)

type mockPutter struct {
	mock.Mock
	body []byte
}

func (m *mockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if params.Body != nil {
		m.body, _ = io.ReadAll(params.Body)
	}
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key))
	if out, ok := args.Get(0).(*s3.PutObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestExportUploadsJSONArray(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", "recipes-bucket", "exports/recipes-20240309T140507Z.json").
		Return(&s3.PutObjectOutput{}, nil)

	exporter := NewS3Exporter(putter, "recipes-bucket", "exports")
	exporter.now = fixedClock

	recipe := &models.Recipe{ID: uuid.New(), Title: "Chili", CookingTime: 50}
	recipe.CreatedBy = "System"

	key, err := exporter.Export(context.Background(), []*models.Recipe{recipe})
	require.NoError(t, err)
	assert.Equal(t, "exports/recipes-20240309T140507Z.json", key)
	putter.AssertExpectations(t)

	var got []types.RecipeResponse
	require.NoError(t, json.Unmarshal(putter.body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, recipe.ID, got[0].ID)
	assert.Equal(t, "System", got[0].CreatedBy)
}

func TestExportWithoutPrefixAndNoRecipes(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", "b", "recipes-20240309T140507Z.json").Return(&s3.PutObjectOutput{}, nil)

	exporter := NewS3Exporter(putter, "b", "")
	exporter.now = fixedClock

	_, err := exporter.Export(context.Background(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(putter.body))
}

func TestExportPropagatesUploadFailure(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := NewS3Exporter(putter, "b", "p").Export(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
