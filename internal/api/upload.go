package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// UploadSignedURL 将文件字节直接PUT到签名地址，上传不经过API服务器。
// 授权内嵌在地址签名里，不带Authorization头。
func (c *Client) UploadSignedURL(ctx context.Context, signedUrl string, body io.Reader, contentType string, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedUrl, body)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode >= 400 {
		return fmt.Errorf("upload rejected with status %d", res.StatusCode)
	}
	return nil
}
