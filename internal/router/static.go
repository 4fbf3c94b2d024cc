package router

import (
	"net/http"
	"os"
	"path"
)

// noListingFS serves files but hides directories that lack an index.html,
// so http.FileServer never renders a listing.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	_ = index.Close()
	return f, nil
}

func staticHandler(dir string) http.Handler {
	return http.StripPrefix("/static/", http.FileServer(noListingFS{fs: http.Dir(dir)}))
}
