package main

import "github.com/killallgit/podcastr/cmd"

// @title           Podcastr API
// @version         1.0.0
// @description     Episode pages for the Podcastr podcast, generated from the episodes API and cached for a day
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcastr
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
