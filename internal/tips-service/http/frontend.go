package http

import "net/http"

// index serve o shell do dashboard; as grades chegam prontas de /api/cards.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="pt-BR"><head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>Palpites iA</title>
<style>
body{font-family:system-ui,sans-serif;background:#0d1117;color:#e6edf3;margin:0}
.container{max-width:1100px;margin:0 auto;padding:20px}
h1{font-size:20px}h2{font-size:15px;color:#8b949e;margin-top:28px}
input,button{padding:8px 12px;border-radius:6px;border:1px solid #30363d;background:#161b22;color:#e6edf3}
button{cursor:pointer}button:hover{background:#21262d}
.grade{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:12px;margin-top:10px}
.cartao-aposta{background:#161b22;border:1px solid #30363d;border-radius:10px;padding:14px}
.cartao-aposta h3{margin:0 0 6px;font-size:14px}
.liga,.prob,.rodape-aposta{color:#8b949e;font-size:12px}
.odd{color:#3fb950;font-weight:600}
.grade-vazia{color:#8b949e;padding:12px}
#toast{position:fixed;bottom:20px;right:20px;background:#21262d;padding:10px 16px;border-radius:8px;display:none}
#toast.show{display:block}
#containerPrincipal,#adminPanel{display:none}
</style></head><body><div class="container">
<div id="authContainer">
  <h1>Palpites iA</h1>
  <input id="email" type="email" placeholder="email">
  <input id="password" type="password" placeholder="senha">
  <button id="loginBtn">Entrar</button>
  <button id="registerBtn">Cadastrar</button>
  <div id="authMsg" class="prob"></div>
</div>
<div id="containerPrincipal">
  <h1><span id="nomeUsuario"></span>
    <button id="analyzeBtn">Analisar</button>
    <button id="adminBtn">Admin</button>
    <button id="logoutBtn">Sair</button></h1>
  <div id="adminPanel"><h2>Cadastros pendentes</h2><div id="pendingList"></div></div>
  <h2>Top apostas</h2><div id="topApostas" class="grade"></div>
  <h2>Apostas seguras</h2><div id="gridApostasSeguras" class="grade"></div>
  <h2>Múltiplas</h2><div id="gridMultiplas" class="grade"></div>
  <h2>Todas as apostas</h2><div id="gridTodasApostas" class="grade"></div>
</div>
<div id="toast"></div>
</div><script>
function toast(m){var e=document.getElementById('toast');e.textContent=m;e.classList.add('show');setTimeout(function(){e.classList.remove('show')},3000)}
function post(p,d){return fetch(p,{method:'POST',headers:{'Content-Type':'application/json'},credentials:'same-origin',body:JSON.stringify(d)}).then(function(r){return r.json()})}
function get(p){return fetch(p,{credentials:'same-origin'}).then(function(r){return r.json()})}
function showApp(u){document.getElementById('authContainer').style.display='none';document.getElementById('containerPrincipal').style.display='block';document.getElementById('nomeUsuario').textContent='Olá, '+u.email;loadCards(false)}
function loadCards(refresh){get('/api/cards'+(refresh?'?refresh=1':'')).then(function(c){
  if(c.status!=='ok'){toast(c.msg||'Erro');return}
  document.getElementById('topApostas').innerHTML=c.top;
  document.getElementById('gridApostasSeguras').innerHTML=c.safe;
  document.getElementById('gridMultiplas').innerHTML=c.multiplas;
  document.getElementById('gridTodasApostas').innerHTML=c.individuais;
  toast('Palpites de hoje carregados!')})}
document.getElementById('loginBtn').addEventListener('click',function(){
  var e=document.getElementById('email').value.trim(),p=document.getElementById('password').value;
  if(!e||!p){document.getElementById('authMsg').textContent='Preencha email e senha';return}
  post('/api/login',{email:e,password:p}).then(function(r){
    if(r.status==='ok'){showApp(r.user);toast('Bem-vindo!')}
    else document.getElementById('authMsg').textContent=r.msg||'Erro'})});
document.getElementById('registerBtn').addEventListener('click',function(){
  var e=document.getElementById('email').value.trim(),p=document.getElementById('password').value;
  if(!e||!p){document.getElementById('authMsg').textContent='Preencha email e senha';return}
  post('/api/register',{email:e,password:p}).then(function(r){document.getElementById('authMsg').textContent=r.msg||r.status})});
document.getElementById('logoutBtn').addEventListener('click',function(){post('/api/logout',{}).then(function(){location.reload()})});
document.getElementById('analyzeBtn').addEventListener('click',function(){toast('Atualizando dados do servidor...');loadCards(true)});
document.getElementById('adminBtn').addEventListener('click',function(){
  var p=document.getElementById('adminPanel');
  if(p.style.display==='block'){p.style.display='none';return}
  get('/api/pending_users').then(function(r){
    if(r.status!=='ok'){toast(r.msg||'Sem permissão');return}
    var list=r.pending||[];
    document.getElementById('pendingList').innerHTML=list.length?list.map(function(u){
      return '<div>'+u.email+' <button onclick="aprovar(\''+u.email+'\')">Aprovar</button></div>'}).join(''):'<div>Nenhum usuário pendente</div>';
    p.style.display='block'})});
function aprovar(email){post('/api/approve_user',{email:email}).then(function(r){toast(r.msg||r.status);document.getElementById('adminBtn').click();document.getElementById('adminBtn').click()})}
get('/api/session').then(function(s){if(s&&s.user){showApp(s.user)}});
</script></body></html>`
