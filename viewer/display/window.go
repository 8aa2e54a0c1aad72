// Package display shows a render session in a desktop window.
package display

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/viewer/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpLine = "R: render  V: view  S: save  Esc: quit"

// Run opens a window over the session and blocks until it is closed
func Run(sess *session.Session, title string, width, height int) error {
	g := &viewerGame{sess: sess, width: width, height: height, generation: -1}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type viewerGame struct {
	sess          *session.Session
	width, height int
	frameImg      *ebiten.Image
	generation    int
}

func (g *viewerGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sess.Close()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sess.Start(core.ModeFull)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.sess.Start(core.ModePreview)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		// Failures are reported on the status line
		_ = g.sess.Save()
	}
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	frame, generation := g.sess.Frame()
	if frame != nil && generation != g.generation {
		if g.frameImg == nil {
			g.frameImg = ebiten.NewImage(g.width, g.height)
		}
		g.frameImg.WritePixels(frame.Pix)
		g.generation = generation
	}
	if g.frameImg != nil {
		screen.DrawImage(g.frameImg, nil)
	}

	status := g.sess.Status()
	if rows, total, running := g.sess.Progress(); running && total > 0 {
		status = fmt.Sprintf("%s %d%%", status, rows*100/total)
	}
	ebitenutil.DebugPrint(screen, status+"\n"+helpLine)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
