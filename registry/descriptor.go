package registry

import (
	"fmt"
	"io"
	"strings"
)

// DescriptorExt is the file extension of particle descriptors.
const DescriptorExt = ".odf"

// Descriptor parameters shared by every variant.
const (
	descriptorColor  = "255 255 255 255"
	descriptorRadius = "1.2"
	animateTime      = "1e30"
	lifeTime         = "0.5"
)

// Descriptor is the particle definition that lets the engine spawn one
// variant as an effect.
type Descriptor struct {
	// Name is the variant name. It also names the file and the particle
	// class.
	Name string
	// Texture is the lookup key the renderer uses: the variant name for
	// sheet builds, a per-variant texture file for individual builds.
	Texture string
}

// FileName returns the descriptor's file name.
func (d Descriptor) FileName() string {
	return d.Name + DescriptorExt
}

// WriteTo writes the descriptor in the engine's sectioned key=value form.
func (d Descriptor) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, `[ExplosionClass]
classLabel="explosion"
particleTypes=1
particleClass1="%s.l"
particleCount1=1

[l]
renderBase="draw_sprite"
simulateBase="sim_null"
textureName="%s"
startColor="%s"
finishColor="%s"
startRadius=%s
finishRadius=%s
animateTime=%s
lifeTime=%s
`, d.Name, d.Texture, descriptorColor, descriptorColor,
		descriptorRadius, descriptorRadius, animateTime, lifeTime)
	return int64(n), err
}

// ParseTexture extracts the textureName value from a descriptor body.
func ParseTexture(body string) (string, bool) {
	for _, line := range strings.Split(body, "\n") {
		v, ok := strings.CutPrefix(strings.TrimSpace(line), `textureName="`)
		if ok && strings.HasSuffix(v, `"`) {
			return strings.TrimSuffix(v, `"`), true
		}
	}
	return "", false
}
