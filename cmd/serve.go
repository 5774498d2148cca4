package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and watches for changes",
	Long: `The serve command performs an initial build of your site, then starts a local
web server to serve your output directory. It also watches your content, layouts,
and static directories for changes and automatically rebuilds the site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("performing initial build")
		if err := runBuildProcess(appConfig); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}
		logger.Info("initial build successful")

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			// Rebuilds are debounced so a burst of editor events
			// triggers one build.
			var buildTimer *time.Timer
			debounceDuration := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						logger.Infow("change detected", "path", event.Name, "op", event.Op.String())

						// New subdirectories are not watched automatically;
						// add them as they appear.
						if event.Has(fsnotify.Create) && isDir(event.Name) {
							if err := watcher.Add(event.Name); err != nil {
								logger.Warnf("error adding new directory %s to watcher: %v", event.Name, err)
							}
						}

						if buildTimer != nil {
							buildTimer.Stop()
						}
						buildTimer = time.AfterFunc(debounceDuration, func() {
							logger.Info("rebuilding site due to changes")
							if err := runBuildProcess(appConfig); err != nil {
								logger.Errorf("error during rebuild: %v", err)
							} else {
								logger.Info("site rebuilt successfully")
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					logger.Warnf("watcher error: %v", err)
				}
			}
		}()

		// fsnotify watches are per directory; walk each tree and add every
		// subdirectory.
		pathsToWatch := []string{
			appConfig.ContentDir,
			appConfig.LayoutsDir,
			appConfig.StaticDir,
		}

		for _, rootPath := range pathsToWatch {
			if _, statErr := os.Stat(rootPath); os.IsNotExist(statErr) {
				logger.Infof("directory '%s' not found, not watching", rootPath)
				continue
			}

			err = filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					logger.Warnf("error walking %s: %v", path, err)
					return nil
				}
				if d.IsDir() {
					if watchErr := watcher.Add(path); watchErr != nil {
						logger.Warnf("failed to watch %s: %v", path, watchErr)
					}
				}
				return nil
			})
			if err != nil {
				logger.Warnf("error during initial directory walk for watching %s: %v", rootPath, err)
			}
		}

		serverAddr := fmt.Sprintf(":%d", serverPort)
		logger.Infof("serving site from '%s' on http://localhost%s", appConfig.OutputDir, serverAddr)
		logger.Info("press Ctrl+C to stop the server")

		fileServer := http.FileServer(http.Dir(appConfig.OutputDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// Prevent directory listing.
			if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
				_, err := os.Stat(filepath.Join(appConfig.OutputDir, r.URL.Path, "index.html"))
				if os.IsNotExist(err) {
					http.NotFound(w, r)
					return
				}
			}
			// No caching during development.
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fileServer.ServeHTTP(w, r)
		})

		if err := http.ListenAndServe(serverAddr, nil); err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
