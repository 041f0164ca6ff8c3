package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	userModel "sscacademy_backend/internals/features/lms/users/model"
)

// Kanvas landscape, 2x dari layout 792x612pt.
const (
	renderWidth  = 1584
	renderHeight = 1224
	leftMargin   = 120
	ribbonWidth  = 400
	qrSize       = 160
)

// Palet warna sertifikat
const (
	colorBlueDark   = "#0B3A64"
	colorBlueMedium = "#1E538A"
	colorBlueLight  = "#3C95F9"
	colorLightText  = "#666666"
	colorDarkText   = "#222222"
)

// Nama aset branding yang dicari lewat AssetProvider.
const (
	assetBackground  = "certbackground.png"
	assetRibbon      = "certribbon.png"
	assetLogo        = "certlogo.png"
	assetFontRegular = "certfont-regular.ttf"
	assetFontBold    = "certfont-bold.ttf"
	assetFontItalic  = "certfont-italic.ttf"
)

type RenderInput struct {
	Certificate *certModel.CertificateModel
	Course      *courseModel.CourseModel
	User        *userModel.UserModel
}

// CertificateRenderer mengubah record sertifikat terverifikasi jadi dokumen
// PNG satu halaman. Transformasi murni: tidak pernah menulis ke store; aset
// branding yang hilang di-degrade ke fallback polos, TAPI gagal encode QR
// fatal untuk render tsb (area verifikasi tidak boleh blank diam-diam).
type CertificateRenderer struct {
	Assets  AssetProvider
	BaseURL string
}

func NewCertificateRenderer(assets AssetProvider, baseURL string) *CertificateRenderer {
	return &CertificateRenderer{Assets: assets, BaseURL: baseURL}
}

// VerificationURL bentuk URL yang di-encode ke QR: <base>/verify/<id>.
func (r *CertificateRenderer) VerificationURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/verify/%s", strings.TrimRight(r.BaseURL, "/"), id.String())
}

// FileName nama unduhan dengan certificate_number supaya traceable.
func FileName(cert *certModel.CertificateModel) string {
	return fmt.Sprintf("certificate-%s.png", cert.CertificateNumber)
}

func (r *CertificateRenderer) Render(ctx context.Context, in *RenderInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in == nil || in.Certificate == nil {
		return nil, fmt.Errorf("%w: missing certificate record", ErrRenderFailure)
	}

	dc := gg.NewContext(renderWidth, renderHeight)

	// --- Background: aset atau putih polos ---
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if bg, ok := r.loadImage(assetBackground); ok {
		dc.DrawImage(imaging.Resize(bg, renderWidth, renderHeight, imaging.Lanczos), 0, 0)
	}

	// --- Ribbon kanan: aset atau gradient biru ---
	ribbonX := float64(renderWidth - ribbonWidth)
	if rb, ok := r.loadImage(assetRibbon); ok {
		dc.DrawImage(imaging.Resize(rb, ribbonWidth, renderHeight, imaging.Lanczos), renderWidth-ribbonWidth, 0)
	} else {
		grad := gg.NewLinearGradient(ribbonX, 0, float64(renderWidth), float64(renderHeight))
		grad.AddColorStop(0, parseHex(colorBlueMedium))
		grad.AddColorStop(1, parseHex(colorBlueLight))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(ribbonX, 0, ribbonWidth, renderHeight)
		dc.Fill()
	}

	regular := r.loadFace(assetFontRegular, goregular.TTF, 24)
	bold36 := r.loadFace(assetFontBold, gobold.TTF, 36)
	bold28 := r.loadFace(assetFontBold, gobold.TTF, 28)
	light32 := r.loadFace(assetFontRegular, goregular.TTF, 32)

	// --- Logo & nama organisasi ---
	textX := float64(leftMargin)
	if logo, ok := r.loadImage(assetLogo); ok {
		scaled := imaging.Resize(logo, 160, 0, imaging.Lanczos)
		dc.DrawImage(scaled, leftMargin, 80)
		textX = float64(leftMargin + 180)
	}
	dc.SetHexColor(colorBlueDark)
	dc.SetFontFace(bold36)
	dc.DrawString("DEPARTMENT OF SCIENCE AND TECHNOLOGY", textX, 120)
	dc.SetFontFace(bold28)
	dc.DrawString("REGIONAL OFFICE 02", textX, 165)
	dc.SetHexColor(colorLightText)
	dc.SetFontFace(light32)
	dc.DrawString("SMART AND SUSTAINABLE COMMUNITIES ACADEMY", textX, 215)

	// --- Tanggal terbit ---
	issued := in.Certificate.CertificateIssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	dc.SetFontFace(regular)
	dc.SetHexColor(colorLightText)
	dc.DrawString("Issued: "+issued.Format("Jan 2, 2006"), leftMargin, 320)

	contentWidth := float64(renderWidth - ribbonWidth - 240)

	// --- Nama penerima ---
	recipient := "Unknown Recipient"
	if in.User != nil && strings.TrimSpace(in.User.UserName) != "" {
		recipient = in.User.UserName
	}
	dc.SetHexColor(colorBlueDark)
	dc.SetFontFace(r.loadFace(assetFontBold, gobold.TTF, 72))
	dc.DrawStringWrapped(recipient, leftMargin, 420, 0, 0, contentWidth, 1.2, gg.AlignLeft)

	// --- Baris completion ---
	dc.SetHexColor(colorLightText)
	dc.SetFontFace(r.loadFace(assetFontRegular, goregular.TTF, 28))
	dc.DrawString("has successfully completed", leftMargin, 560)

	// --- Judul course ---
	courseTitle := "Unknown Course"
	if in.Course != nil && strings.TrimSpace(in.Course.CourseTitle) != "" {
		courseTitle = in.Course.CourseTitle
	}
	dc.SetHexColor(colorBlueMedium)
	dc.SetFontFace(r.loadFace(assetFontBold, gobold.TTF, 40))
	dc.DrawStringWrapped(courseTitle, leftMargin, 600, 0, 0, contentWidth, 1.2, gg.AlignLeft)

	// --- Subtitle program ---
	dc.SetHexColor(colorLightText)
	dc.SetFontFace(regular)
	dc.DrawString("An online course authorized by DOST - Region 02 and offered through the", leftMargin, 720)
	dc.SetFontFace(r.loadFace(assetFontBold, gobold.TTF, 24))
	dc.DrawString("Smart and Sustainable Communities Program", leftMargin, 755)

	// --- Grade & skills (opsional) ---
	y := 830.0
	if in.Certificate.CertificateGrade != nil {
		dc.SetHexColor(colorDarkText)
		dc.SetFontFace(regular)
		dc.DrawString(fmt.Sprintf("Grade: %.0f%%", *in.Certificate.CertificateGrade), leftMargin, y)
		y += 45
	}
	if in.Course != nil && len(in.Course.CourseSkills) > 0 {
		dc.SetHexColor(colorLightText)
		dc.SetFontFace(regular)
		dc.DrawStringWrapped("Skills: "+strings.Join(in.Course.CourseSkills, ", "),
			leftMargin, y, 0, 0, contentWidth, 1.2, gg.AlignLeft)
	}

	// --- Blok tanda tangan ---
	signatureY := float64(renderHeight - 280)
	dc.SetHexColor(colorLightText)
	dc.SetLineWidth(1)
	dc.DrawLine(leftMargin, signatureY, leftMargin+500, signatureY)
	dc.Stroke()
	dc.SetHexColor(colorDarkText)
	dc.SetFontFace(r.loadFace(assetFontItalic, goitalic.TTF, 32))
	dc.DrawString("Dr. Virginia G. Bilgera", leftMargin, signatureY-20)
	dc.SetHexColor(colorLightText)
	dc.SetFontFace(r.loadFace(assetFontRegular, goregular.TTF, 20))
	dc.DrawString("Regional Director", leftMargin, signatureY+35)
	dc.DrawString("DOST - Region 02", leftMargin, signatureY+65)

	// --- QR code verifikasi: gagal encode = fatal, bukan area blank ---
	verifyURL := r.VerificationURL(in.Certificate.CertificateID)
	qr, err := qrcode.New(verifyURL, qrcode.Medium)
	if err != nil {
		log.Printf("[CertificateRenderer] ERROR encode QR for %s: %v", in.Certificate.CertificateID, err)
		return nil, fmt.Errorf("%w: qr encode: %v", ErrRenderFailure, err)
	}
	qrX := int(ribbonX) - qrSize - 40
	qrY := int(signatureY) - 45
	dc.DrawImage(qr.Image(qrSize), qrX, qrY)
	dc.SetHexColor(colorDarkText)
	dc.SetFontFace(r.loadFace(assetFontRegular, goregular.TTF, 16))
	qrCaption := "Scan to Verify"
	cw, _ := dc.MeasureString(qrCaption)
	dc.DrawString(qrCaption, float64(qrX)+(float64(qrSize)-cw)/2, float64(qrY+qrSize)+30)

	// --- Nomor sertifikat di ribbon ---
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(r.loadFace(assetFontRegular, goregular.TTF, 20))
	dc.DrawStringWrapped("Certificate ID: "+in.Certificate.CertificateNumber,
		ribbonX+40, float64(renderHeight-240), 0, 0, ribbonWidth-80, 1.3, gg.AlignCenter)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

// loadImage decode aset image; absen atau korup → (nil, false), biar caller
// jatuh ke fallback.
func (r *CertificateRenderer) loadImage(name string) (image.Image, bool) {
	if r.Assets == nil {
		return nil, false
	}
	raw, ok := r.Assets.LoadAsset(name)
	if !ok {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("[CertificateRenderer] asset %s undecodable (ignored): %v", name, err)
		return nil, false
	}
	return img, true
}

// loadFace pakai font branded kalau ada, fallback ke Go fonts embedded.
func (r *CertificateRenderer) loadFace(name string, fallbackTTF []byte, size float64) font.Face {
	ttf := fallbackTTF
	if r.Assets != nil {
		if raw, ok := r.Assets.LoadAsset(name); ok {
			ttf = raw
		}
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		f, _ = truetype.Parse(fallbackTTF)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func parseHex(s string) color.Color {
	var r, g, b int
	fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
