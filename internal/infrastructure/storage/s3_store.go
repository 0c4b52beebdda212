// Package storage implementa el almacén de documentos sobre un servicio
// S3-compatible (AWS S3, MinIO, RustFS). Una "carpeta" de proveedor es un
// prefijo de llaves bajo el prefijo raíz configurado; borrar la carpeta es
// borrar todos los objetos del prefijo.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tu-usuario/proveedores-api/internal/application/proveedor"
	"github.com/tu-usuario/proveedores-api/pkg/config"
)

var _ proveedor.FileStore = (*S3FileStore)(nil)

// S3FileStore implementación de proveedor.FileStore con el SDK v2 de AWS.
type S3FileStore struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucket     string
	rootPrefix string
	expiry     time.Duration
}

// NewS3FileStore construye el adaptador desde la configuración de la app.
func NewS3FileStore(cfg config.StorageConfig) (*S3FileStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket es requerido")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage: access key y secret key son requeridos")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: configurar SDK: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	expiry := cfg.PresignExpiry
	if expiry == 0 {
		expiry = time.Hour
	}

	return &S3FileStore{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		rootPrefix: normalizarPrefijo(cfg.RootPrefix),
		expiry:     expiry,
	}, nil
}

// CrearCarpeta registra el prefijo de la carpeta con un objeto marcador vacío
// y devuelve el prefijo como identificador de la carpeta.
func (s *S3FileStore) CrearCarpeta(ctx context.Context, nombre string) (string, error) {
	carpetaID := s.rootPrefix + nombre + "/"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(carpetaID),
		Body:   bytes.NewReader(nil),
	})
	if err != nil {
		return "", fmt.Errorf("storage: crear carpeta %s: %w", nombre, err)
	}
	return carpetaID, nil
}

// SubirPDF sube el contenido bajo la carpeta y devuelve la referencia con
// links firmados de vista (inline) y descarga (attachment).
func (s *S3FileStore) SubirPDF(ctx context.Context, carpetaID, nombre string, contenido []byte, mimeType string) (*proveedor.ArchivoSubido, error) {
	key := carpetaID + nombre
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contenido),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: subir %s: %w", nombre, err)
	}

	vista, err := s.presignGet(ctx, key, "inline")
	if err != nil {
		return nil, err
	}
	descarga, err := s.presignGet(ctx, key, fmt.Sprintf("attachment; filename=%q", nombre))
	if err != nil {
		return nil, err
	}

	return &proveedor.ArchivoSubido{
		ID:          key,
		URLVista:    vista,
		URLDescarga: descarga,
	}, nil
}

// EliminarCarpeta borra todos los objetos bajo el prefijo de la carpeta,
// incluido el marcador.
func (s *S3FileStore) EliminarCarpeta(ctx context.Context, carpetaID string) error {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(carpetaID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("storage: listar carpeta %s: %w", carpetaID, err)
		}
		if len(page.Contents) == 0 {
			continue
		}
		objetos := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objetos = append(objetos, types.ObjectIdentifier{Key: obj.Key})
		}
		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objetos, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("storage: eliminar carpeta %s: %w", carpetaID, err)
		}
	}
	return nil
}

func (s *S3FileStore) presignGet(ctx context.Context, key, disposition string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(disposition),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("storage: firmar URL de %s: %w", key, err)
	}
	return req.URL, nil
}

func normalizarPrefijo(prefijo string) string {
	prefijo = strings.TrimPrefix(prefijo, "/")
	if prefijo != "" && !strings.HasSuffix(prefijo, "/") {
		prefijo += "/"
	}
	return prefijo
}
