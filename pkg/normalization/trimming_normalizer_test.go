package normalization_test

import (
	"testing"

	"github.com/buildbarn/bb-pathname/internal/mock"
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathname/pkg/normalization"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrimmingNormalizer(t *testing.T) {
	t.Run("NoTrimming", func(t *testing.T) {
		n := normalization.NewTrimmingNormalizer(path.QuotedFormat, path.NoTrimming, path.VoidComponentVisitor{})
		require.Equal(t, "a//./b", n.Normalize("/a//./b"))
		require.Equal(t, "", n.Normalize(""))
	})

	t.Run("EmptinessAndSelf", func(t *testing.T) {
		n := normalization.NewTrimmingNormalizer(path.QuotedFormat, path.TrimEmptiness.Union(path.TrimSelf), path.VoidComponentVisitor{})
		require.Equal(t, "a/b", n.Normalize("/a//./b"))
		require.Equal(t, "usr/local/'/./'bin", n.Normalize("/usr/./local//'/./'bin"))
	})

	t.Run("RawFormat", func(t *testing.T) {
		// Quotes offer no protection when every slash separates
		// components.
		n := normalization.NewTrimmingNormalizer(path.RawFormat, path.TrimSelf, path.VoidComponentVisitor{})
		require.Equal(t, "usr/local/'/'bin", n.Normalize("usr/local/'/./'bin"))
		require.Equal(t, "/a", n.Normalize("/./a"))
	})

	t.Run("VisitsAllComponents", func(t *testing.T) {
		// Components removed by the trimming are still visited,
		// exactly once per call.
		ctrl := gomock.NewController(t)

		visitor := mock.NewMockComponentVisitor(ctrl)
		n := normalization.NewTrimmingNormalizer(path.QuotedFormat, path.TrimEmptiness.Union(path.TrimSelf), visitor)

		gomock.InOrder(
			visitor.EXPECT().OnCurrent(),
			visitor.EXPECT().OnItem("a"),
			visitor.EXPECT().OnEmpty(),
			visitor.EXPECT().OnItem("'b/c'"),
			visitor.EXPECT().OnParent())
		require.Equal(t, "a/'b/c'/..", n.Normalize("./a//'b/c'/.."))
	})
}
