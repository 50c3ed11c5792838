package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

// O site exibe os barbeiros em cards quadrados 400x400.
const portraitSize = 400

// ImageStorage recebe a foto enviada no painel, normaliza para WebP
// 400x400 e publica num bucket compatível com S3. O registro do
// barbeiro guarda só a URL resultante.
type ImageStorage struct {
	client *s3.Client
	cfg    config.S3Config
	logger *zap.Logger
}

func NewImageStorage(cfg config.S3Config, logger *zap.Logger) *ImageStorage {
	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	return &ImageStorage{client: client, cfg: cfg, logger: logger}
}

func (s *ImageStorage) UploadBarberPortrait(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("arquivo vazio")
	}

	if fileType := http.DetectContentType(data); !strings.HasPrefix(fileType, "image/") {
		return "", errors.New("o arquivo não é uma imagem")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decodificar imagem: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, portraitSize, portraitSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("codificar webp: %w", err)
	}

	objectName := fmt.Sprintf("barbers/%s.webp", uuid.New().String())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(objectName),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("enviar para o bucket: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(s.cfg.Endpoint, "/"),
		s.cfg.Bucket,
		objectName,
	)

	s.logger.Info("foto de barbeiro publicada",
		zap.String("object", objectName),
		zap.Int("bytes", buf.Len()),
	)

	return url, nil
}
