package main

import "github.com/killallgit/podcast-api/cmd"

// @title           Podcast API
// @version         1.0.0
// @description     Podcast platform API: creators, podcasts, episodes, playlists and listener collections
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer JWT, e.g. "Bearer eyJ..."
func main() {
	cmd.Execute()
}
