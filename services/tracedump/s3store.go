// Package tracedump uploads diagnostic snapshots of stuck searches — a
// parked route that sat in the Driver's slot past its staleness window, or
// a planner FAILED verdict worth keeping around — to S3-compatible object
// storage, the way services/r2 uploaded game files in the teacher repo.
package tracedump

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/turnforge/ironfront/pathing"
)

// Store uploads trace snapshots to a single S3 bucket.
type Store struct {
	client *s3.Client
	bucket string
}

// Config is the subset of S3-compatible connection settings a trace dump
// target needs: a real bucket on AWS needs only Region/Bucket; an R2 or
// minio endpoint also sets EndpointURL and static credentials.
type Config struct {
	Region      string
	Bucket      string
	EndpointURL string // empty for real AWS S3
	AccessKey   string
	SecretKey   string
}

// NewStore builds an S3 client from cfg, falling back to the default AWS
// credential chain when AccessKey/SecretKey are empty.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("tracedump: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
	})

	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// Snapshot is the JSON payload uploaded for one stuck or failed search.
type Snapshot struct {
	UnitID    string              `json:"unit_id"`
	Verdict   string              `json:"verdict"`
	StartTile pathing.TileCoord   `json:"start_tile"`
	TargetX   int32               `json:"target_x"`
	TargetY   int32               `json:"target_y"`
	Frame     int64               `json:"frame"`
	Waypoints []pathing.TileCoord `json:"waypoints"`
}

// Upload serializes snap as JSON and puts it under a frame-stamped key.
func (s *Store) Upload(ctx context.Context, snap Snapshot) (string, error) {
	body, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("tracedump: marshal snapshot: %w", err)
	}

	key := objectKey(snap)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("tracedump: upload %s: %w", key, err)
	}
	return key, nil
}

// objectKey is the bucket key Upload stores a snapshot under.
func objectKey(snap Snapshot) string {
	return fmt.Sprintf("traces/%s/%d-%s.json", snap.Verdict, snap.Frame, snap.UnitID)
}

// NewSnapshot captures a unit's parked or failed search state, stamped with
// the frame it was taken at (the caller's FrameClock, not time.Now — this
// package never calls the wall clock so it stays deterministic in tests).
func NewSnapshot(unit *pathing.Unit, verdict string, targetX, targetY int32, frame int64) Snapshot {
	return Snapshot{
		UnitID:    fmt.Sprint(unit.ID),
		Verdict:   verdict,
		StartTile: pathing.WorldTile(unit.Position),
		TargetX:   targetX,
		TargetY:   targetY,
		Frame:     frame,
		Waypoints: append([]pathing.TileCoord(nil), unit.Move.Waypoints...),
	}
}
