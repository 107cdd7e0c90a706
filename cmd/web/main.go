// @title           jobboard API
// @version         1.0
// @description     API фриланс-биржи: объявления, отклики, модерация и админка.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
