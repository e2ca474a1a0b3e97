package material

import "github.com/chewxy/math32"

// GammaToLinear decodes one sRGB encoded channel.
func GammaToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// LinearToGamma encodes one linear channel with the sRGB transfer curve.
func LinearToGamma(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}
