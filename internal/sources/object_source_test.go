package sources_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logbench/internal/sources"
	"logbench/internal/shared/sinks"
	sinkmocks "logbench/internal/shared/sinks/mocks"
)

type capture struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newCapture() *capture {
	return &capture{objects: make(map[string][]byte)}
}

func (c *capture) handle(name string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects[name] = data
}

func TestObjectSource_FetchAll(t *testing.T) {
	t.Parallel()

	sink, err := sinks.NewFileSink(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.Write(ctx, "a.json", []byte(`[1]`)))
	require.NoError(t, sink.Write(ctx, "b.json", []byte(`[2]`)))
	require.NoError(t, sink.Write(ctx, "c.json", []byte(`[3]`)))

	source := sources.NewObjectSource(sink, sources.Options{Width: 2})
	got := newCapture()

	report, err := source.FetchAll(ctx, got.handle)
	require.NoError(t, err)
	assert.Equal(t, 3, report.ObjectsListed)
	assert.Equal(t, 3, report.ObjectsFetched)
	assert.Equal(t, 0, report.ReadFailures)
	assert.Equal(t, map[string][]byte{
		"a.json": []byte(`[1]`),
		"b.json": []byte(`[2]`),
		"c.json": []byte(`[3]`),
	}, got.objects)
}

func TestObjectSource_DecompressesGzippedObjects(t *testing.T) {
	t.Parallel()

	sink, err := sinks.NewFileSink(t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write([]byte(`[{"service":"training"}]`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	ctx := context.Background()
	require.NoError(t, sink.Write(ctx, "a.json.gz", buf.Bytes()))

	source := sources.NewObjectSource(sink, sources.Options{})
	got := newCapture()

	report, err := source.FetchAll(ctx, got.handle)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ObjectsFetched)
	assert.Equal(t, []byte(`[{"service":"training"}]`), got.objects["a.json.gz"])
}

func TestObjectSource_CorruptGzipCountedNotFatal(t *testing.T) {
	t.Parallel()

	sink, err := sinks.NewFileSink(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.Write(ctx, "good.json", []byte(`[]`)))
	require.NoError(t, sink.Write(ctx, "bad.json.gz", []byte("not gzip at all")))

	source := sources.NewObjectSource(sink, sources.Options{})
	got := newCapture()

	report, err := source.FetchAll(ctx, got.handle)
	require.NoError(t, err)
	assert.Equal(t, 2, report.ObjectsListed)
	assert.Equal(t, 1, report.ObjectsFetched)
	assert.Equal(t, 1, report.ReadFailures)
	assert.Contains(t, got.objects, "good.json")
	assert.NotContains(t, got.objects, "bad.json.gz")
}

func TestObjectSource_ReadFailuresCountedNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := sinkmocks.NewMockSink(ctrl)
	mockSink.EXPECT().List(gomock.Any()).Return([]string{"a.json", "b.json", "c.json"}, nil)
	mockSink.EXPECT().Read(gomock.Any(), "a.json").Return([]byte(`[1]`), nil)
	mockSink.EXPECT().Read(gomock.Any(), "b.json").Return(nil, errors.New("read timeout"))
	mockSink.EXPECT().Read(gomock.Any(), "c.json").Return([]byte(`[3]`), nil)

	source := sources.NewObjectSource(mockSink, sources.Options{Width: 1})
	got := newCapture()

	report, err := source.FetchAll(context.Background(), got.handle)
	require.NoError(t, err)
	assert.Equal(t, 3, report.ObjectsListed)
	assert.Equal(t, 2, report.ObjectsFetched)
	assert.Equal(t, 1, report.ReadFailures)
}

func TestObjectSource_ListFailureIsFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := sinkmocks.NewMockSink(ctrl)
	mockSink.EXPECT().List(gomock.Any()).Return(nil, errors.New("access denied"))

	source := sources.NewObjectSource(mockSink, sources.Options{})

	report, err := source.FetchAll(context.Background(), newCapture().handle)
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestObjectSource_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSink := sinkmocks.NewMockSink(ctrl)
	mockSink.EXPECT().List(gomock.Any()).Return([]string{"a.json", "b.json"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := sources.NewObjectSource(mockSink, sources.Options{})

	report, err := source.FetchAll(ctx, newCapture().handle)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.ObjectsFetched)
}
