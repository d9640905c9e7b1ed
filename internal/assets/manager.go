package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"
)

// Locations inside the static directory
const (
	ImagesDir = "images"
	FontFile  = "font/Adonais.ttf"
	MusicFile = "images/bg.mp3"
)

// ErrMissing reports an asset that is not present in the static directory.
var ErrMissing = errors.New("asset missing")

// Manager reads assets from a static directory, usually os.DirFS("static").
type Manager struct {
	fsys fs.FS
	log  zerolog.Logger
}

func NewManager(fsys fs.FS, log zerolog.Logger) *Manager {
	return &Manager{fsys: fsys, log: log}
}

func (m *Manager) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// DecodeImage decodes images/<name> without touching the GPU.
func (m *Manager) DecodeImage(name string) (image.Image, error) {
	fileData, err := m.read(path.Join(ImagesDir, name))
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

// LoadImage loads images/<name> into VRAM.
func (m *Manager) LoadImage(name string) (*ebiten.Image, error) {
	img, err := m.DecodeImage(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadScaled loads images/<name> and rescales it to size.
func (m *Manager) LoadScaled(name string, size image.Point) (*ebiten.Image, error) {
	img, err := m.LoadImage(name)
	if err != nil {
		return nil, err
	}
	return Rescale(img, size), nil
}

// Rescale draws src stretched into a new image of the given size. src is
// returned as-is when it already has that size.
func Rescale(src *ebiten.Image, size image.Point) *ebiten.Image {
	b := src.Bounds()
	if b.Size() == size || size.X <= 0 || size.Y <= 0 {
		return src
	}

	dst := ebiten.NewImage(size.X, size.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.X)/float64(b.Dx()), float64(size.Y)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// LoadFont returns the label font, falling back to the embedded Go Regular
// face when the font file is missing or unreadable.
func (m *Manager) LoadFont() *text.GoTextFaceSource {
	data, err := m.read(FontFile)
	if err == nil {
		src, perr := text.NewGoTextFaceSource(bytes.NewReader(data))
		if perr == nil {
			return src
		}
		err = perr
	}

	m.log.Warn().Err(err).Str("font", FontFile).Msg("using fallback font")
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(fmt.Sprintf("failed to load fallback font: %v", err))
	}
	return src
}

// LoadMusic returns the raw background music bytes.
func (m *Manager) LoadMusic() ([]byte, error) {
	return m.read(MusicFile)
}
