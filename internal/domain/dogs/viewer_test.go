package dogs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mountAndWait(t *testing.T, cat *fakeCatalog) (*Viewer, ViewState) {
	t.Helper()

	v := NewViewer(NewService(cat), nil)
	v.Mount(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	state, err := v.Wait(ctx)
	require.NoError(t, err)
	return v, state
}

func TestViewer_InitialStateIsLoading(t *testing.T) {
	v := NewViewer(NewService(&fakeCatalog{}), nil)

	s := v.State()
	require.Equal(t, StatusLoading, s.Status)
	require.Equal(t, "Loading dogs, hang tight...", s.Message)
	require.True(t, s.Loading())
}

func TestViewer_StaysLoadingUntilBreedsArrive(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds, release: make(chan struct{})}
	v := NewViewer(NewService(cat), nil)

	go v.Mount(context.Background())

	require.Eventually(t, func() bool { return cat.listCalls.Load() == 1 }, time.Second, time.Millisecond)
	require.Equal(t, StatusLoading, v.State().Status)

	close(cat.release)
	<-v.Done()
	require.Equal(t, StatusReady, v.State().Status)
}

func TestViewer_ReadyWithMainAndTenThumbnails(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusReady, s.Status)
	require.Equal(t, ReadyMessage, s.Message)
	require.False(t, s.Loading())
	require.Len(t, s.Thumbnails, ThumbnailCount)

	all := append([]Dog{s.Main}, s.Thumbnails...)
	require.Len(t, all, 11)
	for _, d := range all {
		require.Contains(t, testBreeds, d.Breed)
		require.Equal(t, "https://images.dog.ceo/breeds/"+d.Breed+"/dog.jpg", d.Image)
	}

	// 1 lista + 11 imágenes
	require.EqualValues(t, 12, cat.totalCalls())
}

func TestViewer_BreedListFailure(t *testing.T) {
	cat := &fakeCatalog{listErr: upstreamStatus(500)}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusError, s.Status)
	require.Equal(t, "Couldn't fetch the list of breeds", s.Message)
	require.EqualValues(t, 1, cat.totalCalls())
}

func TestViewer_EmptyBreedList(t *testing.T) {
	cat := &fakeCatalog{breeds: []string{}}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusError, s.Status)
	require.Equal(t, "Something went wrong with the list you provided", s.Message)
	require.EqualValues(t, 1, cat.totalCalls())
}

func TestViewer_ImageFailureFailsWholeBatch(t *testing.T) {
	cat := &fakeCatalog{
		breeds: testBreeds,
		imageErr: func(n int64) error {
			if n == 1 {
				return upstreamStatus(404)
			}
			return nil
		},
	}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusError, s.Status)
	require.Equal(t, "Couldn't fetch the random image for your breed", s.Message)
	require.Nil(t, s.Thumbnails)
	// sin cancelación: el batch completo corre igual
	require.EqualValues(t, 11, cat.imageCalls.Load())
}

func TestViewer_SeveralImageFailuresShowOneMessage(t *testing.T) {
	boom := errors.New("network exploded")
	cat := &fakeCatalog{
		breeds: testBreeds,
		imageErr: func(n int64) error {
			switch n % 3 {
			case 0:
				return upstreamStatus(500)
			case 1:
				return boom
			}
			return nil
		},
	}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusError, s.Status)
	require.Contains(t, []string{MsgImageUnavailable, MsgUnknown}, s.Message)
}

func TestViewer_UntypedFailureShowsFallback(t *testing.T) {
	cat := &fakeCatalog{listErr: errors.New("network exploded")}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusError, s.Status)
	require.Equal(t, "We couldn't find any dogs ):", s.Message)
}

func TestViewer_PanicShowsFallback(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds, imagePanic: true}

	_, s := mountAndWait(t, cat)

	require.Equal(t, StatusError, s.Status)
	require.Equal(t, MsgUnknown, s.Message)
}

func TestViewer_MountRunsOnce(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds}
	v := NewViewer(NewService(cat), nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Mount(context.Background())
		}()
	}
	wg.Wait()
	<-v.Done()

	v.Mount(context.Background())

	require.EqualValues(t, 1, cat.listCalls.Load())
	require.EqualValues(t, 12, cat.totalCalls())
}

func TestViewer_MountIgnoresCallerCancellation(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds}
	v := NewViewer(NewService(&ctxCheckingCatalog{fakeCatalog: cat}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v.Mount(ctx)

	require.Equal(t, StatusReady, v.State().Status)
}

// ctxCheckingCatalog falla si recibe un contexto cancelado.
type ctxCheckingCatalog struct {
	*fakeCatalog
}

func (c *ctxCheckingCatalog) ListBreeds(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.fakeCatalog.ListBreeds(ctx)
}

func (c *ctxCheckingCatalog) RandomImage(ctx context.Context, breed string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.fakeCatalog.RandomImage(ctx, breed)
}

func TestViewer_SelectPromotesThumbnail(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds}
	v, before := mountAndWait(t, cat)
	callsBefore := cat.totalCalls()

	after, err := v.Select(3)
	require.NoError(t, err)

	require.Equal(t, before.Thumbnails[3], after.Main)
	if diff := cmp.Diff(before.Thumbnails, after.Thumbnails); diff != "" {
		t.Fatalf("thumbnails changed (-before +after):\n%s", diff)
	}
	require.Equal(t, after, v.State())
	require.Equal(t, callsBefore, cat.totalCalls())
}

func TestViewer_SelectErrors(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		v := NewViewer(NewService(&fakeCatalog{}), nil)
		_, err := v.Select(0)
		require.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("error state", func(t *testing.T) {
		v, _ := mountAndWait(t, &fakeCatalog{listErr: upstreamStatus(500)})
		_, err := v.Select(0)
		require.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("out of range", func(t *testing.T) {
		v, before := mountAndWait(t, &fakeCatalog{breeds: testBreeds})
		for _, idx := range []int{-1, ThumbnailCount} {
			_, err := v.Select(idx)
			require.ErrorIs(t, err, ErrThumbnailOutOfRange)
		}
		require.Equal(t, before, v.State())
	})
}

func TestViewer_StateIsACopy(t *testing.T) {
	v, _ := mountAndWait(t, &fakeCatalog{breeds: testBreeds})

	s := v.State()
	s.Thumbnails[0] = Dog{Breed: "mutated"}

	require.NotEqual(t, "mutated", v.State().Thumbnails[0].Breed)
}

func TestViewer_WaitHonoursContext(t *testing.T) {
	v := NewViewer(NewService(&fakeCatalog{}), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	s, err := v.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, StatusLoading, s.Status)
}

func TestFetchBatch_KeepsDispatchOrderWhenCompletingInReverse(t *testing.T) {
	const n = 1 + ThumbnailCount

	gates := make([]chan struct{}, n)
	for i := range gates {
		gates[i] = make(chan struct{})
	}
	finished := make(chan int, n)

	type batchResult struct {
		dogs []Dog
		err  error
	}
	out := make(chan batchResult, 1)
	go func() {
		got, err := fetchBatch(context.Background(), n, func(ctx context.Context, i int) (Dog, error) {
			<-gates[i]
			defer func() { finished <- i }()
			return Dog{Breed: fmt.Sprintf("breed-%d", i), Image: fmt.Sprintf("https://images.dog.ceo/breeds/dog-%d.jpg", i)}, nil
		})
		out <- batchResult{dogs: got, err: err}
	}()

	// El último despachado termina primero
	completion := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		close(gates[i])
		completion = append(completion, <-finished)
	}
	require.Equal(t, n-1, completion[0])
	require.Equal(t, 0, completion[n-1])

	res := <-out
	require.NoError(t, res.err)
	require.Len(t, res.dogs, n)
	for i, d := range res.dogs {
		require.Equal(t, fmt.Sprintf("breed-%d", i), d.Breed)
		require.Equal(t, fmt.Sprintf("https://images.dog.ceo/breeds/dog-%d.jpg", i), d.Image)
	}
}

func TestFetchBatch_WaitsForAllAndReportsOneError(t *testing.T) {
	var started sync.WaitGroup
	started.Add(3)
	var finished sync.WaitGroup
	finished.Add(3)

	got, err := fetchBatch(context.Background(), 3, func(ctx context.Context, i int) (Dog, error) {
		defer finished.Done()
		started.Done()
		if i == 0 {
			return Dog{}, newError(KindImageUnavailable, nil)
		}
		// los demás siguen aunque el 0 ya falló
		started.Wait()
		return Dog{Breed: "akita"}, nil
	})

	finished.Wait()
	require.Nil(t, got)
	require.Equal(t, KindImageUnavailable, KindOf(err))
}
