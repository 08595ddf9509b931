package adapter

import (
	"context"

	"github.com/MKhiriev/career-dashboard/models"
)

// Typed helpers that decode the standard response envelope.

func Get[T any](ctx context.Context, d Dispatcher, path string) (models.APIResponse[T], error) {
	var out models.APIResponse[T]
	err := d.Get(ctx, path, &out)
	return out, err
}

func Post[T any](ctx context.Context, d Dispatcher, path string, body any) (models.APIResponse[T], error) {
	var out models.APIResponse[T]
	err := d.Post(ctx, path, body, &out)
	return out, err
}

func Put[T any](ctx context.Context, d Dispatcher, path string, body any) (models.APIResponse[T], error) {
	var out models.APIResponse[T]
	err := d.Put(ctx, path, body, &out)
	return out, err
}

func Delete[T any](ctx context.Context, d Dispatcher, path string) (models.APIResponse[T], error) {
	var out models.APIResponse[T]
	err := d.Delete(ctx, path, &out)
	return out, err
}

func Upload[T any](ctx context.Context, d Dispatcher, path string, form models.UploadForm) (models.APIResponse[T], error) {
	var out models.APIResponse[T]
	err := d.Upload(ctx, path, form, &out)
	return out, err
}
