package s3_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"edge-driver/internal/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryS3 struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
}

func newMemoryS3() *memoryS3 {
	return &memoryS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (m *memoryS3) GetObject(ctx context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &awss3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (m *memoryS3) PutObject(ctx context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := *in.Bucket + "/" + *in.Key
	m.objects[id] = data
	if in.ContentType != nil {
		m.contentTypes[id] = *in.ContentType
	}
	return &awss3.PutObjectOutput{}, nil
}

func (m *memoryS3) UploadPart(context.Context, *awss3.UploadPartInput, ...func(*awss3.Options)) (*awss3.UploadPartOutput, error) {
	return nil, errors.New("multipart upload not supported")
}

func (m *memoryS3) CreateMultipartUpload(context.Context, *awss3.CreateMultipartUploadInput, ...func(*awss3.Options)) (*awss3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not supported")
}

func (m *memoryS3) CompleteMultipartUpload(context.Context, *awss3.CompleteMultipartUploadInput, ...func(*awss3.Options)) (*awss3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not supported")
}

func (m *memoryS3) AbortMultipartUpload(context.Context, *awss3.AbortMultipartUploadInput, ...func(*awss3.Options)) (*awss3.AbortMultipartUploadOutput, error) {
	return &awss3.AbortMultipartUploadOutput{}, nil
}

func TestUploadThenDownload(t *testing.T) {
	backend := newMemoryS3()
	client := s3.NewFromClient(backend)
	ctx := context.Background()

	uri, err := client.Upload(ctx, "images", "cam/frame.jpg", []byte("jpeg bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "s3://images/cam/frame.jpg", uri)
	assert.Equal(t, "image/jpeg", backend.contentTypes["images/cam/frame.jpg"])

	data, err := client.Download(ctx, "images", "cam/frame.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestDownloadMissingObject(t *testing.T) {
	client := s3.NewFromClient(newMemoryS3())

	_, err := client.Download(context.Background(), "images", "missing.jpg")
	assert.ErrorIs(t, err, s3.ErrObjectNotFound)
}

func TestAnnotatedKey(t *testing.T) {
	assert.Equal(t, "cam/frame_annotated.jpg", s3.AnnotatedKey("cam/frame.png"))
	assert.Equal(t, "frame_annotated.jpg", s3.AnnotatedKey("frame"))
	assert.Equal(t, "a.b/frame.v2_annotated.jpg", s3.AnnotatedKey("a.b/frame.v2.jpeg"))
}
