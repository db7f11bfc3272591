// internal/wheel/transform.go
package wheel

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Angle переводит значение оси в градусы поворота. Линейно, без ограничений
// сверх диапазона самой оси.
func Angle(axis, maxAngle float64) float64 {
	return axis * maxAngle
}

// Fit вписывает src в квадрат side x side с сохранением пропорций: большая
// сторона равна side, ни одна не превышает его.
func Fit(src image.Image, side int) *image.RGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w <= 0 || h <= 0 || side <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	nw, nh := side, side
	if w >= h {
		nh = max(1, int(math.Round(float64(h)*float64(side)/float64(w))))
	} else {
		nw = max(1, int(math.Round(float64(w)*float64(side)/float64(h))))
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

// RotatedBounds возвращает размер охватывающего прямоугольника для
// изображения w x h, повёрнутого на degrees.
func RotatedBounds(w, h int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	const eps = 1e-9
	rw := int(math.Ceil(float64(w)*c + float64(h)*s - eps))
	rh := int(math.Ceil(float64(w)*s + float64(h)*c - eps))
	return max(rw, 0), max(rh, 0)
}

// Rotate поворачивает src вокруг центра. Положительный угол — по часовой
// стрелке на экране (y растёт вниз). Размер результата равен охватывающему
// прямоугольнику, для углов не кратных 90 он больше исходного.
func Rotate(src image.Image, degrees float64) *image.RGBA {
	sb := src.Bounds()
	if degrees == 0 || sb.Empty() {
		dst := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
		draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
		return dst
	}

	rw, rh := RotatedBounds(sb.Dx(), sb.Dy(), degrees)
	dst := image.NewRGBA(image.Rect(0, 0, rw, rh))

	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	// Центр источника в его собственных координатах.
	cx := float64(sb.Min.X) + float64(sb.Dx())/2
	cy := float64(sb.Min.Y) + float64(sb.Dy())/2
	dcx, dcy := float64(rw)/2, float64(rh)/2

	// translate(-c) -> rotate -> translate(dc), из источника в приёмник.
	s2d := f64.Aff3{
		cos, -sin, dcx - cos*cx + sin*cy,
		sin, cos, dcy - sin*cx - cos*cy,
	}
	draw.BiLinear.Transform(dst, s2d, src, sb, draw.Src, nil)
	return dst
}

// Compose очищает dst и копирует img центр в центр. Всё, что выходит за dst,
// обрезается.
func Compose(dst *image.RGBA, img image.Image) {
	clear(dst.Pix)

	db, ib := dst.Bounds(), img.Bounds()
	if ib.Empty() {
		return
	}
	off := image.Pt(
		db.Min.X+(db.Dx()-ib.Dx())/2,
		db.Min.Y+(db.Dy()-ib.Dy())/2,
	)
	draw.Copy(dst, off, img, ib, draw.Src, nil)
}
