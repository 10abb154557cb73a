package version

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anisan-cli/anistream/constant"
	"github.com/anisan-cli/anistream/network"
	"github.com/anisan-cli/anistream/util"
	json "github.com/goccy/go-json"
)

// ReleasesURL points at the latest published release of the repository.
var ReleasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

// Latest fetches the tag of the most recent release, without the "v" prefix.
func Latest(ctx context.Context, client *http.Client) (string, error) {
	req, err := network.NewRequest(ctx, http.MethodGet, ReleasesURL, nil, "")
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
