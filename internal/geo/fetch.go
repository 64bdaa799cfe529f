package geo

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

const (
	censusFTPHost   = "ftp2.census.gov:21"
	boundaryZipPath = "/geo/tiger/GENZ2016/shp/cb_2016_us_county_500k.zip"
)

// FetchBoundaries downloads the Census cartographic boundary archive over
// anonymous FTP and extracts the shapefile members into dir. Returns the
// extracted file paths.
func FetchBoundaries(dir string) ([]string, error) {
	conn, err := ftp.Dial(censusFTPHost, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("ftp dial: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login("anonymous", "anonymous"); err != nil {
		return nil, fmt.Errorf("ftp login: %w", err)
	}

	resp, err := conn.Retr(boundaryZipPath)
	if err != nil {
		return nil, fmt.Errorf("ftp retr %s: %w", boundaryZipPath, err)
	}
	defer resp.Close()

	body, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	return extractShapefile(body, dir)
}

// extractShapefile writes the shapefile members of the zip archive into dir.
func extractShapefile(archive []byte, dir string) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var extracted []string
	for _, f := range zr.File {
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".shp", ".shx", ".dbf", ".prj":
		default:
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in archive: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s from archive: %w", f.Name, err)
		}
		dest := filepath.Join(dir, filepath.Base(f.Name))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", dest, err)
		}
		extracted = append(extracted, dest)
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("archive contains no shapefile members")
	}
	return extracted, nil
}
