package site

// indexTemplate is the survey page. The script mirrors survey.Navigator:
// clamped prev/next, index reset on every mode switch, and a label that
// falls back to the raw folder name.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="survey-build" content="{{.BuildID}}">
  <title>{{.Title}}</title>
  <style>
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
      height: 100vh;
      background-color: #f5f5f5;
      font-family: sans-serif;
    }

    h1 {
      margin-bottom: 20px;
    }

    .instructions {
      max-width: 800px;
      margin-bottom: 20px;
      text-align: center;
      line-height: 1.5;
    }

    .button {
      background-color: #2E7D32;
      color: #fff;
      border: none;
      padding: 10px 20px;
      margin: 5px;
      font-size: 16px;
      border-radius: 8px;
      cursor: pointer;
      transition: background-color 0.2s;
    }
    .button:hover {
      background-color: #1b5e20;
    }
    .button.secondary {
      background-color: #666;
    }
    .button.secondary:hover {
      background-color: #444;
    }

    .viewer-container {
      display: none;
      flex-direction: column;
      align-items: center;
    }

    .video-id-title {
      font-weight: bold;
      margin-bottom: 10px;
    }

    iframe {
      width: 80vw;
      height: 60vh;
      border: 2px solid #ddd;
      border-radius: 8px;
      background-color: #fff;
      margin-bottom: 20px;
    }

    .nav-buttons {
      display: flex;
      gap: 20px;
    }

    .back-button {
      position: absolute;
      top: 20px;
      left: 20px;
      background-color: rgba(0, 0, 0, 0.6);
      color: white;
      padding: 10px 15px;
      font-size: 14px;
      border: none;
      border-radius: 5px;
      cursor: pointer;
      transition: background-color 0.3s;
    }

    .back-button:hover {
      background-color: rgba(255, 255, 255, 0.8);
      color: black;
    }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="instructions">
    {{.Instructions}}
  </div>
  <button id="startButton" class="button">Main Viewer</button>
  {{- if .HasTest}}
  <button id="testViewerButton" class="button secondary">Test Viewer</button>
  {{- end}}

  <div class="viewer-container" id="viewerContainer">
    <div id="videoIdTitle" class="video-id-title"></div>
    <iframe id="viewerFrame" src="" frameborder="0"></iframe>
    <div class="nav-buttons">
      <button id="prevButton" class="button">&larr; Prev</button>
      <button id="nextButton" class="button">Next &rarr;</button>
      <button id="backButton" class="back-button">Back</button>
    </div>
  </div>

  <script>
    const viewerUrls = {{.ViewerURLs}};

    function shuffleArray(array) {
      for (let i = array.length - 1; i > 0; i--) {
        const j = Math.floor(Math.random() * (i + 1));
        [array[i], array[j]] = [array[j], array[i]];
      }
      return array;
    }
    {{- if .Shuffle}}

    shuffleArray(viewerUrls);
    {{- end}}

    const caption_to_id = {{.Captions}};

    const testViewerUrls = {{.TestURLs}};

    let currentIndex = 0;
    let isTestViewer = false;

    const heading = document.querySelector("h1");
    const instructions = document.querySelector(".instructions");
    const startButton = document.getElementById("startButton");
    const testViewerButton = document.getElementById("testViewerButton");
    const viewerContainer = document.getElementById("viewerContainer");
    const viewerFrame = document.getElementById("viewerFrame");
    const prevButton = document.getElementById("prevButton");
    const nextButton = document.getElementById("nextButton");
    const backButton = document.getElementById("backButton");
    const videoIdTitle = document.getElementById("videoIdTitle");

    function activeUrls() {
      return isTestViewer ? testViewerUrls : viewerUrls;
    }

    function showViewer(index, isTest) {
      const urls = isTest ? testViewerUrls : viewerUrls;
      if (index < 0 || index >= urls.length) {
        return;
      }
      viewerFrame.src = urls[index];
      const folderName = urls[index].split("/").slice(-2, -1)[0];
      const videoId = caption_to_id[folderName] !== undefined ? caption_to_id[folderName] : folderName;
      videoIdTitle.textContent = "VIDEO ID: " + videoId;
    }

    function setEntryVisible(visible) {
      const display = visible ? "block" : "none";
      heading.style.display = display;
      instructions.style.display = display;
      startButton.style.display = display;
      if (testViewerButton) {
        testViewerButton.style.display = display;
      }
    }

    function enterViewer(isTest) {
      isTestViewer = isTest;
      currentIndex = 0;
      showViewer(currentIndex, isTestViewer);
      setEntryVisible(false);
      viewerContainer.style.display = "flex";
    }

    function showMainScreen() {
      viewerContainer.style.display = "none";
      viewerFrame.src = "";
      setEntryVisible(true);
    }

    startButton.addEventListener("click", function () {
      enterViewer(false);
    });

    if (testViewerButton) {
      testViewerButton.addEventListener("click", function () {
        enterViewer(true);
      });
    }

    backButton.addEventListener("click", showMainScreen);

    prevButton.addEventListener("click", function () {
      if (currentIndex > 0) {
        currentIndex--;
        showViewer(currentIndex, isTestViewer);
      }
    });

    nextButton.addEventListener("click", function () {
      if (currentIndex < activeUrls().length - 1) {
        currentIndex++;
        showViewer(currentIndex, isTestViewer);
      }
    });
  </script>
</body>
</html>
`

// landingTemplate links to the results and comparison pages.
const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            background: #f5f5f5;
            font-family: sans-serif;
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
        }
        h1 {
            margin-bottom: 2rem;
        }
        .button {
            background-color: #2E7D32;
            color: white;
            border: none;
            padding: 15px 30px;
            margin: 10px;
            font-size: 18px;
            border-radius: 8px;
            cursor: pointer;
            text-decoration: none;
            transition: background-color 0.2s;
        }
        .button:hover {
            background-color: #1b5e20;
        }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <a class="button" href="{{.ResultsPage}}">{{.ResultsButton}}</a>
    <a class="button" href="{{.ComparisonPage}}">{{.ComparisonButton}}</a>
</body>
</html>
`

// gridTemplate is shared by the comparison and results pages.
const gridTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            background: #f5f5f5;
            font-family: sans-serif;
            margin: 0;
            padding: 20px;
        }
        h1 {
            text-align: center;
            margin-bottom: 20px;
        }
        .grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
            gap: 20px;
            max-width: 1200px;
            margin: 0 auto;
        }
        .card {
            background: #fff;
            border: 1px solid #ddd;
            border-radius: 8px;
            overflow: hidden;
            text-align: center;
            padding: 10px;
        }
        .card img {
            max-width: 100%;
            height: auto;
            display: block;
            margin: 0 auto 10px;
        }
        .back-button {
            display: inline-block;
            margin-bottom: 20px;
            background-color: #666;
            color: #fff;
            padding: 10px 20px;
            border-radius: 6px;
            text-decoration: none;
        }
        .empty {
            text-align: center;
            color: #666;
        }
    </style>
</head>
<body>
    <h1>{{.Heading}}</h1>
    <a href="{{.BackPage}}" class="back-button">Back to Main</a>
    <div class="grid">
    {{- range .Cards}}
        <div class="card">
            <a href="{{.ViewerURL}}" target="_blank">
                <img src="{{.Thumbnail}}" alt="{{.Folder}}" />
            </a>
        </div>
    {{- else}}
        <p class="empty">No viewers found.</p>
    {{- end}}
    </div>
</body>
</html>
`
