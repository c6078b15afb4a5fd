package fspath_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/fspath"
	"github.com/matryer/is"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewPath(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		for _, raw := range []string{"", "  ", "/tmp/report.csv", "data/in.txt", "CONSOLE.log", "nul.txt"} {
			_, err := fspath.NewPath(raw)
			i.NoErr(err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		for _, raw := range []string{"CON", "/tmp/nul", "dir/Com1", "lpt9", "bad\x00name"} {
			_, err := fspath.NewPath(raw)
			i.True(errors.Is(err, errors.ErrInvalidValue))
		}

		_, err := fspath.NewPath("/tmp/aux")
		i.Equal("invalid value for Path: '/tmp/aux'", err.Error())
	})

	t.Run("Trimmed", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		p := fspath.MustPath(fspath.NewPath("  /tmp/a.txt "))
		i.Equal("/tmp/a.txt", p.String())
	})

	t.Run("EqualIgnoresCase", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := fspath.MustPath(fspath.NewPath("/Tmp/Report.CSV"))
		b := fspath.MustPath(fspath.NewPath("/tmp/report.csv"))
		c := fspath.MustPath(fspath.NewPath("/tmp/other.csv"))

		i.True(a.Equal(b))
		i.True(!a.Equal(c))
	})
}

func TestPathParts(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	p := fspath.MustPath(fspath.NewPath("/var/data/reports/daily.csv"))

	i.Equal("daily.csv", p.FileName())
	i.Equal(".csv", p.FileExt())
	i.Equal(".csv", p.Ext(false))
	i.Equal("csv", p.Ext(true))
	i.Equal("daily", p.FileNameWithoutExt())
	i.Equal("/var/data/reports", p.Dir().String())
	i.Equal("reports", p.LastDir())
	i.Equal("/", p.Root())
	i.True(!p.IsURI())

	rel := fspath.MustPath(fspath.NewPath("daily.csv"))
	i.Equal("", rel.Root())
	i.Equal("", rel.LastDir())

	var empty fspath.Path
	i.Equal("", empty.FileName())
	i.Equal("", empty.FileExt())
	i.True(empty.Dir().IsEmpty())

	uri := fspath.MustPath(fspath.NewPath("file:///var/data/daily.csv"))
	i.True(uri.IsURI())

	joined, err := fspath.MustPath(fspath.NewPath("/var/data")).Join("in", "a.txt")
	i.NoErr(err)
	i.Equal("/var/data/in/a.txt", joined.String())
}

func TestChangeExt(t *testing.T) {
	t.Parallel()

	t.Run("Replace", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		p := fspath.MustPath(fspath.NewPath("/var/data/daily.csv"))

		got, err := p.ChangeExt(".json")
		i.NoErr(err)
		i.Equal("/var/data/daily.json", got.String())

		noExt := fspath.MustPath(fspath.NewPath("/var/data/daily"))

		got, err = noExt.ChangeExt(".txt")
		i.NoErr(err)
		i.Equal("/var/data/daily.txt", got.String())
	})

	t.Run("EmptyPath", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		got, err := fspath.Path{}.ChangeExt(".txt")
		i.NoErr(err)
		i.True(got.IsEmpty())
	})

	t.Run("MissingDot", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		p := fspath.MustPath(fspath.NewPath("/var/data/daily.csv"))

		_, err := p.ChangeExt("json")
		i.True(errors.Is(err, errors.ErrInvalidArgument))
	})
}

func TestStampedName(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	p := fspath.MustPath(fspath.NewPath("/var/data/report.csv"))

	t.Run("Prepend", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		got, err := p.StampedName(fspath.StampPrepend, now)
		i.NoErr(err)
		i.Equal("/var/data/[2024-03-01T123045.0000000+0000]_report.csv", got.String())
	})

	t.Run("Append", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		got, err := p.StampedName(fspath.StampAppend, now)
		i.NoErr(err)
		i.Equal("/var/data/report_[2024-03-01T123045.0000000+0000].csv", got.String())
	})

	t.Run("NoneStripsStamp", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		for _, loc := range []fspath.StampLocation{fspath.StampPrepend, fspath.StampAppend} {
			stamped, err := p.StampedName(loc, now)
			i.NoErr(err)

			got, err := stamped.StampedName(fspath.StampNone, now)
			i.NoErr(err)
			i.Equal(p.String(), got.String())
		}

		got, err := p.StampedName(fspath.StampNone, now)
		i.NoErr(err)
		i.Equal(p.String(), got.String())
	})

	t.Run("UnknownLocation", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := p.StampedName(fspath.StampLocation(9), now)
		i.True(errors.Is(err, errors.ErrInvalidArgument))
	})
}

func TestFileIO(t *testing.T) {
	t.Parallel()

	t.Run("SaveAndRead", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		dir := t.TempDir()
		p := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "nested", "out.txt")))

		i.True(!p.Exists())
		i.True(!p.PathExists())

		text, err := p.ReadAllText()
		i.NoErr(err)
		i.Equal("", text)

		i.True(!p.SaveText(zap.NewNop(), "hello", false))
		i.True(!p.Exists())

		i.True(p.SaveText(zap.NewNop(), "hello", true))
		i.True(p.Exists())
		i.True(p.PathExists())
		i.True(p.Dir().DirExists())
		i.True(!p.DirExists())
		i.True(!p.IsLocked())

		text, err = p.ReadAllText()
		i.NoErr(err)
		i.Equal("hello", text)
	})

	t.Run("SaveTextLogsFailure", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		core, logs := observer.New(zapcore.DebugLevel)

		p := fspath.MustPath(fspath.NewPath(filepath.Join(t.TempDir(), "missing", "out.txt")))

		i.True(!p.SaveText(zap.New(core), "hello", false))
		i.Equal(1, logs.Len())

		entry := logs.All()[0]
		i.Equal("directory does not exist", entry.Message)
		i.Equal("fspath", entry.ContextMap()["class_name"])
		i.Equal("SaveText", entry.ContextMap()["method_name"])
		i.Equal(p.String(), entry.ContextMap()["path"])
	})

	t.Run("CopyTo", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		dir := t.TempDir()
		src := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "src.txt")))
		dest := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "out", "dest.txt")))

		i.True(src.SaveText(zap.NewNop(), "first", false))

		i.NoErr(src.CopyTo(dest, false))
		i.True(src.Exists())

		text, err := dest.ReadAllText()
		i.NoErr(err)
		i.Equal("first", text)

		i.True(src.SaveText(zap.NewNop(), "second", false))

		err = src.CopyTo(dest, false)
		i.True(errors.Is(err, errors.ErrAlreadyExists))

		i.NoErr(src.CopyTo(dest, true))

		text, err = dest.ReadAllText()
		i.NoErr(err)
		i.Equal("second", text)
	})

	t.Run("CopyToSelf", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		dir := t.TempDir()
		src := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "src.txt")))
		dotted := fspath.MustPath(fspath.NewPath(dir + "/./src.txt"))
		link := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "link.txt")))

		i.True(src.SaveText(zap.NewNop(), "important data", false))
		i.NoErr(os.Link(src.Raw(), link.Raw()))

		for _, dest := range []fspath.Path{src, dotted, link} {
			err := src.CopyTo(dest, true)
			i.True(errors.Is(err, errors.ErrInvalidArgument))

			err = src.MoveTo(dest, true)
			i.True(errors.Is(err, errors.ErrInvalidArgument))
		}

		text, err := src.ReadAllText()
		i.NoErr(err)
		i.Equal("important data", text)
	})

	t.Run("MoveTo", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		dir := t.TempDir()
		src := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "src.txt")))
		dest := fspath.MustPath(fspath.NewPath(filepath.Join(dir, "moved", "dest.txt")))

		i.True(src.SaveText(zap.NewNop(), "payload", false))
		i.NoErr(src.MoveTo(dest, false))

		i.True(!src.Exists())
		i.True(dest.Exists())

		text, err := dest.ReadAllText()
		i.NoErr(err)
		i.Equal("payload", text)

		err = src.MoveTo(dest, true)
		i.True(errors.Is(err, errors.ErrNotFound))
	})

	t.Run("EnsureDir", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		p := fspath.MustPath(fspath.NewPath(filepath.Join(t.TempDir(), "a", "b", "c.txt")))
		i.NoErr(p.EnsureDir())

		info, err := os.Stat(p.Dir().Raw())
		i.NoErr(err)
		i.True(info.IsDir())

		err = fspath.Path{}.EnsureDir()
		i.True(errors.Is(err, errors.ErrInvalidArgument))
	})

	t.Run("IsLockedMissingFile", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		p := fspath.MustPath(fspath.NewPath(filepath.Join(t.TempDir(), "none.txt")))
		i.True(p.IsLocked())
	})
}
