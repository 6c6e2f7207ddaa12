package icon

import (
	"fmt"
	"testing"

	"github.com/lyrebird-cli/lyrebird/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := Fail; i <= Search; i++ {
			target := i

			Convey(fmt.Sprintf("Icon %d renders for each variant", target), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Playing), ShouldBeEmpty)
		})

		Reset(func() {
			viper.Set(key.IconsVariant, "plain")
		})
	})
}
