package main

import "html/template"

const loginHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    html { font-size: 62.5%; }
    body { margin: 0; font-family: "Segoe UI", sans-serif; }
    .login-container { position: absolute; background-color: #838c81; width: 100vw; height: 100vh; z-index: 200; }
    .login-container .login-outter-div { position: absolute; left: 50%; top: 15%; }
    .login-container .close { position: relative; right: -55%; cursor: pointer; color: inherit; display: inline-block; }
    .login-container .close:hover { color: crimson; }
    .login-container .close svg { width: 22px; height: 22px; fill: currentColor; }
    .login-container .login-inner-div { position: relative; left: -50%; background-color: #fff; display: flex; flex-direction: column; justify-content: center; align-items: center; width: 28vw; height: 70vh; margin: 0 auto; }
    .login-container h1.login-h1 { font-size: 2.4rem; font-weight: 400; }
    .login-container img { width: 18rem; height: 18rem; }
    .login-container form { display: flex; flex-direction: column; justify-content: center; align-items: flex-start; font-size: 1.8rem; width: 30rem; padding: 1rem 0; }
    .login-container form input[type="text"],
    .login-container form input[type="password"] { width: 30rem; margin: 0.5rem 0; font-size: 1.8rem; padding: 0.4rem; box-sizing: border-box; }
    .login-container form button.login-btn { align-self: center; margin: 2rem 0; width: 30rem; height: 4.5rem; color: #fff; background-color: #838c81; border: 0; border-radius: 1rem; font-size: 1.8rem; cursor: pointer; }
  </style>
</head>
<body>
  <div class="login-container">
    <div class="login-outter-div">
      <a class="close" href="{{.ClosePath}}" aria-label="Close">
        <svg viewBox="0 0 352 512" aria-hidden="true"><path d="M242.72 256l100.07-100.07c12.28-12.28 12.28-32.19 0-44.48l-22.24-22.24c-12.28-12.28-32.19-12.28-44.48 0L176 189.28 75.93 89.21c-12.28-12.28-32.19-12.28-44.48 0L9.21 111.45c-12.28 12.28-12.28 32.19 0 44.48L109.28 256 9.21 356.07c-12.28 12.28-12.28 32.19 0 44.48l22.24 22.24c12.28 12.28 32.2 12.28 44.48 0L176 322.72l100.07 100.07c12.28 12.28 32.2 12.28 44.48 0l22.24-22.24c12.28-12.28 12.28-32.19 0-44.48L242.72 256z"/></svg>
      </a>
      <div class="login-inner-div">
        <img src="{{.LogoSrc}}" alt="{{.LogoAlt}}">
        <h1 class="login-h1">{{.Heading}}</h1>
        <form method="post" action="{{.Action}}" autocomplete="off">
          <label for="username">Username</label>
          <input type="text" id="username" name="username" class="username">

          <label for="password">Password</label>
          <input type="password" id="password" name="password">

          <span>
            <input type="checkbox" id="remember" name="remember">
            <label for="remember">Remember me</label>
          </span>

          <button type="submit" class="login-btn">Login</button>
        </form>
      </div>
    </div>
  </div>
</body>
</html>
`

const homeHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; font-family: "Segoe UI", sans-serif; background: #f4f5f3; color: #2f352e; }
    header { display: flex; align-items: center; justify-content: space-between; padding: 16px 32px; background: #838c81; color: #fff; }
    header img { width: 48px; height: 48px; }
    header a { color: #fff; font-weight: 600; text-decoration: none; }
    main { max-width: 720px; margin: 48px auto; padding: 0 24px; line-height: 1.5; }
  </style>
</head>
<body>
  <header>
    <img src="{{.LogoSrc}}" alt="{{.LogoAlt}}">
    <a href="{{.LoginPath}}">Login</a>
  </header>
  <main>
    <h1>{{.Heading}}</h1>
  </main>
</body>
</html>
`

var (
	loginTemplate = template.Must(template.New("login").Parse(loginHTML))
	homeTemplate  = template.Must(template.New("home").Parse(homeHTML))
)
