package htmlcheck

import (
	"context"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

func getRobotsData(ctx context.Context, client *http.Client, baseURL string, agent string) (data *robotstxt.RobotsData, err error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/robots.txt", nil)
	if errRequest != nil {
		return nil, errRequest
	}
	req.Header.Set("User-Agent", agent)
	resp, errGet := client.Do(req)
	if errGet != nil {
		return nil, errGet
	}
	defer resp.Body.Close()
	data, errFromResponse := robotstxt.FromResponse(resp)
	if errFromResponse != nil {
		return nil, errFromResponse
	}
	return data, nil
}

// robotsAllow tells if agent may fetch documentURL
func robotsAllow(ctx context.Context, client *http.Client, documentURL string, agent string) (allowed bool, err error) {
	u, errParse := url.Parse(documentURL)
	if errParse != nil {
		return false, errParse
	}
	robotsData, errRobots := getRobotsData(ctx, client, u.Scheme+"://"+u.Host, agent)
	if errRobots != nil {
		return false, errRobots
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return robotsData.TestAgent(path, agent), nil
}
